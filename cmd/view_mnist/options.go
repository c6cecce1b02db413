package main

import "flag"
import "strings"

import "github.com/pkg/errors"

type options struct {
	dataset string
	model   string
	classes int
	scale   int
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.dataset, "dataset", "mnist_dataset.csv", "dataset file: csv (optionally .gz) or gzip idx images")
	fs.StringVar(&o.model, "model", "mnist.json.lzw", "model file: .json.lzw, .json or .pb")
	fs.IntVar(&o.classes, "classes", 0, "number of classes the model predicts (0 = 10)")
	fs.IntVar(&o.scale, "scale", 10, "pixel scale of the digit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, o.validate()
}

func (o *options) validate() error {
	if strings.TrimSpace(o.dataset) == "" {
		return errors.New("-dataset is required")
	}
	if strings.TrimSpace(o.model) == "" {
		return errors.New("-model is required")
	}
	if o.classes < 0 {
		return errors.Errorf("-classes must be >= 0 (got %d)", o.classes)
	}
	if o.scale <= 0 {
		return errors.Errorf("-scale must be > 0 (got %d)", o.scale)
	}
	return nil
}
