// Package status prints numbered, colorized and animated progress lines for
// a long-running pipeline.
//
// A Renderer remembers the last line it drew and whether the cursor is
// still sitting on it. Lines started with Inline are left open and
// redrawn in place with a carriage return, so later Append calls can grow
// them into a small animation:
//
//	r := status.New(os.Stdout, status.Settings{})
//	r.Header("START")
//	r.Numbered("fetching sources", status.WithColor(style.Blue), status.Inline())
//	for _, step := range steps {
//	    r.Append(step)
//	}
//	r.InlineEnd()
//	r.Offset("done", status.WithColor(style.Green))
//
// The output looks like:
//
//	****************************** START *******************************
//	 1. fetching sources > a > b > c
//	    done
//
// A Renderer is not safe for concurrent use; it belongs to one pipeline.
package status
