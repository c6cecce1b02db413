package main

import "flag"
import "strings"

import "github.com/pkg/errors"

type options struct {
	dataset string
	model   string
	classes int
	start   int
	steps   int
	ascii   bool
	png     string
	scale   int
	topk    int
	history int
	batch   bool
	labels  string
	limit   int
	pgo     string
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.dataset, "dataset", "mnist_dataset.csv", "dataset file: csv (optionally .gz) or gzip idx images")
	fs.StringVar(&o.model, "model", "mnist.json.lzw", "model file: .json.lzw hashtron network, .json linear model, .pb tensorflow graph")
	fs.IntVar(&o.classes, "classes", 0, "number of classes the model predicts (0 = 10)")
	fs.IntVar(&o.start, "start", 0, "index of the first sample shown")
	fs.IntVar(&o.steps, "steps", 9, "number of times to advance to the next sample")
	fs.BoolVar(&o.ascii, "ascii", false, "draw every sample in the terminal")
	fs.StringVar(&o.png, "png", "", "write every sample to this png path, %d is replaced by the frame number")
	fs.IntVar(&o.scale, "scale", 8, "png scale factor")
	fs.IntVar(&o.topk, "topk", 0, "also print the k best classes for each sample")
	fs.IntVar(&o.history, "history", 0, "print the last n predictions at exit")
	fs.BoolVar(&o.batch, "batch", false, "classify the whole dataset in parallel and print a summary")
	fs.StringVar(&o.labels, "labels", "", "gzip idx label file for -batch accuracy")
	fs.IntVar(&o.limit, "limit", 0, "goroutines used by -batch (0 = logical cores)")
	fs.StringVar(&o.pgo, "pgo", "", "write a cpu profile to this file")
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
	if o.start < 0 {
		return errors.Errorf("-start must be >= 0 (got %d)", o.start)
	}
	if o.steps < 0 {
		return errors.Errorf("-steps must be >= 0 (got %d)", o.steps)
	}
	if o.scale <= 0 {
		return errors.Errorf("-scale must be > 0 (got %d)", o.scale)
	}
	if o.topk < 0 || o.history < 0 || o.limit < 0 {
		return errors.New("-topk, -history and -limit must be >= 0")
	}
	if o.labels != "" && !o.batch {
		return errors.New("-labels needs -batch")
	}
	return nil
}
