package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/time/rate"

	"github.com/ib-77/perhaps/internal/person"
	"github.com/ib-77/perhaps/pkg/rop/core"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

type LoadCMD struct {
	Paths []string `arg:"" type:"path" help:"YAML documents with a name and an age"`

	Lines int     `env:"PERHAPS_LINES" default:"2" help:"Number of documents loaded concurrently"`
	Rate  float64 `env:"PERHAPS_RATE" default:"0" help:"Maximum documents loaded per second, 0 means unlimited"`
	Burst int     `env:"PERHAPS_BURST" default:"1" help:"Documents allowed above the rate in a burst"`
}

func (l *LoadCMD) Run(_ *Context) error {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return l.run(c, os.Stdout)
}

func (l *LoadCMD) run(ctx context.Context, w io.Writer) error {
	ctx = core.WithWorkerOptions(ctx, l.Lines)
	if l.Rate > 0 {
		ctx = core.WithRateLimit(ctx, rate.Limit(l.Rate), l.Burst)
	}

	reports := person.LoadAll(ctx, l.Paths, 0)

	failed := 0
	for _, r := range reports {
		if solo.Null(r.Result) {
			failed++
		}
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to load", failed, len(reports))
	}
	return nil
}
