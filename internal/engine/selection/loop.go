package selection

import (
	"context"
	"fmt"
	"io"

	"github.com/irahardianto/stagehand/internal/platform/logger"
)

// Item is one thing the user can select.
type Item struct {
	// Preview is printed before the question. May be empty.
	Preview string
	// Prompt is the question text.
	Prompt string
	// Keep is called when the item is selected.
	Keep func()
}

// Result summarises one run of the loop.
type Result struct {
	Kept  int
	Asked int
	// Stopped is set when the user answered done.
	Stopped bool
	// AutoAccepted is set when the user answered all.
	AutoAccepted bool
}

// Run walks the items in order and applies the user's answers. After
// AnswerAll every remaining item is kept without asking; after AnswerDone
// the remaining items are left alone. Cancellation is only observed between
// questions.
func Run(ctx context.Context, asker Asker, items []Item, out io.Writer) (Result, error) {
	log := logger.FromContext(ctx)
	var res Result

	for i, item := range items {
		if res.AutoAccepted {
			keep(item, &res)
			continue
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}

		if item.Preview != "" {
			fmt.Fprintln(out, item.Preview)
		}

		answer, err := asker.Ask(ctx, item.Prompt, i+1, len(items))
		if err != nil {
			return res, err
		}
		res.Asked++
		log.Debug("selection answer", "index", i+1, "total", len(items), "answer", answer.String())

		switch answer {
		case AnswerYes:
			keep(item, &res)
		case AnswerAll:
			keep(item, &res)
			res.AutoAccepted = true
		case AnswerDone:
			res.Stopped = true
			return res, nil
		}
	}

	return res, nil
}

func keep(item Item, res *Result) {
	if item.Keep != nil {
		item.Keep()
	}
	res.Kept++
}
