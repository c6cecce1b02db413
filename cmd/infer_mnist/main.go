package main

import "context"
import "flag"
import "fmt"
import "io"
import "log"
import "os"
import "os/signal"
import "syscall"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/inference"
import "github.com/neurlang/digitview/prediction"
import "github.com/neurlang/digitview/render"
import "github.com/neurlang/digitview/session"

func main() {
	if err := mainErr(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	if opts.pgo != "" {
		stopProfile, err := startProfile(opts.pgo)
		if err != nil {
			return err
		}
		defer stopProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, opts, os.Stdout)
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	dataset, err := mnist.Load(opts.dataset)
	if err != nil {
		return err
	}
	exec, err := inference.Open(opts.model, inference.Options{Classes: opts.classes})
	if err != nil {
		return err
	}
	defer exec.Close()

	if opts.batch {
		return runBatch(ctx, opts, dataset, exec, out)
	}

	var renderers render.Multi
	if opts.ascii {
		renderers = append(renderers, render.ASCII{W: out})
	}
	if opts.png != "" {
		renderers = append(renderers, &render.PNG{Path: opts.png, Scale: opts.scale})
	}
	sessOpts := []session.Option{
		session.WithPresenter(session.WriterPresenter{W: out}),
		session.WithHistory(opts.history),
	}
	if len(renderers) > 0 {
		sessOpts = append(sessOpts, session.WithRenderer(renderers))
	}
	sess, err := session.New(dataset, exec, sessOpts...)
	if err != nil {
		return err
	}
	log.Printf("session=%s dataset=%s samples=%d model=%s", sess.ID(), opts.dataset, sess.Len(), opts.model)

	if opts.start == 0 {
		err = sess.Initialize()
	} else {
		err = sess.Seek(opts.start)
	}
	if err != nil {
		return err
	}
	if err := printTopK(out, opts.topk, sess.Scores()); err != nil {
		return err
	}
	for i := 0; i < opts.steps; i++ {
		if ctx.Err() != nil {
			break
		}
		if _, err := sess.Step(); err != nil {
			return err
		}
		if err := printTopK(out, opts.topk, sess.Scores()); err != nil {
			return err
		}
	}
	if opts.history > 0 {
		for _, r := range sess.History() {
			fmt.Fprintf(out, "[history] sample %d: %s\n", r.Cursor, r.Prediction)
		}
	}
	return nil
}

func printTopK(out io.Writer, k int, scores inference.ScoreVector) error {
	if k == 0 {
		return nil
	}
	top, err := prediction.TopK(scores, k)
	if err != nil {
		return err
	}
	for rank, p := range top {
		fmt.Fprintf(out, "  #%d %s\n", rank+1, p)
	}
	return nil
}

func runBatch(ctx context.Context, opts *options, dataset mnist.Dataset, exec inference.Executor, out io.Writer) error {
	var labels []byte
	if opts.labels != "" {
		var err error
		labels, err = mnist.LoadIDXLabels(opts.labels, "")
		if err != nil {
			return err
		}
	}
	res, err := session.PredictAll(ctx, dataset, exec, opts.limit)
	if err != nil {
		return err
	}
	for class, n := range res.Histogram {
		fmt.Fprintf(out, "[class %d] %d samples (%d%%)\n", class, n, n*100/len(res.Predictions))
	}
	if labels != nil {
		acc, err := res.Accuracy(labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[infer success rate] %.2f %%\n", acc*100)
	}
	return nil
}
