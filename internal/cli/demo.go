package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ib-77/perhaps/internal/person"
	"github.com/ib-77/perhaps/pkg/rop/perhaps"
)

var demoDocuments = map[string]string{
	"valid.yaml":   "name: mkbernard\nage: 30\n",
	"invalid.yaml": "name: mkbernard\n  age: [30\n",
}

type DemoCMD struct {
	Dir string `type:"path" help:"Directory for the sample documents, a temporary one when empty"`
}

func (d *DemoCMD) Run(_ *Context) error {
	return d.run(context.Background(), os.Stdout)
}

func (d *DemoCMD) run(ctx context.Context, w io.Writer) error {
	dir := d.Dir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "perhaps-demo-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	paths := []string{
		filepath.Join(dir, "valid.yaml"),
		filepath.Join(dir, "invalid.yaml"),
		filepath.Join(dir, "missing.yaml"),
	}
	for _, p := range paths[:2] {
		if err := os.WriteFile(p, []byte(demoDocuments[filepath.Base(p)]), 0o600); err != nil {
			return err
		}
	}

	for _, r := range person.LoadAll(ctx, paths, 1) {
		_, err := fmt.Fprintf(w, "%s\n  perhaps: %v\n  either:  %v\n",
			filepath.Base(r.Path), perhaps.Forget(r.Result), r.Result)
		if err != nil {
			return err
		}
	}
	return nil
}
