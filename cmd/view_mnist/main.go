package main

import "flag"
import "log"
import "os"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/inference"
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
	v, err := newViewer(opts)
	if err != nil {
		return err
	}
	defer v.sess.Close()
	log.Printf("session=%s dataset=%s samples=%d model=%s", v.sess.ID(), opts.dataset, v.sess.Len(), opts.model)

	w, h := v.size()
	ebiten.SetWindowTitle("MNIST digits")
	ebiten.SetWindowSize(w*2, h*2)
	return ebiten.RunGame(v)
}

// newViewer loads the dataset and the model. The returned viewer's session
// owns the executor; on error nothing is left open.
func newViewer(opts *options) (*viewer, error) {
	dataset, err := mnist.Load(opts.dataset)
	if err != nil {
		return nil, err
	}
	exec, err := inference.Open(opts.model, inference.Options{Classes: opts.classes})
	if err != nil {
		return nil, err
	}
	v := &viewer{scale: opts.scale}
	v.sess, err = session.New(dataset, exec, session.WithRenderer(v), session.WithPresenter(v))
	if err != nil {
		exec.Close()
		return nil, err
	}
	return v, nil
}
