package main

import "bytes"
import "context"
import "encoding/json"
import "flag"
import "io"
import "os"
import "path/filepath"
import "strconv"
import "strings"
import "testing"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/inference"

// writeFixtures writes a 3 sample csv whose first pixel is the class and a
// linear model that predicts the first pixel
func writeFixtures(t *testing.T) (dataset, model string) {
	t.Helper()
	dir := t.TempDir()
	var csv strings.Builder
	for class := 0; class < 3; class++ {
		for i := 0; i < mnist.SampleSize; i++ {
			if i != 0 {
				csv.WriteByte(',')
			}
			v := 0
			if i == class {
				v = 255
			}
			csv.WriteString(strconv.Itoa(v))
		}
		csv.WriteByte('\n')
	}
	dataset = filepath.Join(dir, "mnist_dataset.csv")
	if err := os.WriteFile(dataset, []byte(csv.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	m := inference.LinearModel{Classes: 3, Inputs: mnist.SampleSize, Bias: make([]float32, 3)}
	for c := 0; c < 3; c++ {
		row := make([]float32, mnist.SampleSize)
		row[c] = 8
		m.Weights = append(m.Weights, row)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	model = filepath.Join(dir, "mnist.json")
	if err := os.WriteFile(model, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return
}

func parse(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("infer_mnist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	o, err := parseFlags(fs, args)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestRunSteps(t *testing.T) {
	dataset, model := writeFixtures(t)
	opts := parse(t, "-dataset", dataset, "-model", model, "-steps", "3", "-history", "2")
	var out bytes.Buffer
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"idx : 0 ,", "idx : 1 ,", "idx : 2 ,", "idx : 0 ,", "[history] sample 2:", "[history] sample 0:"}
	if len(lines) != len(want) {
		t.Fatalf("output:\n%s", out.String())
	}
	for i := range want {
		if !strings.HasPrefix(lines[i], want[i]) {
			t.Fatalf("line %d = %q, want prefix %q", i, lines[i], want[i])
		}
	}
}

func TestRunStartTopKAndPNG(t *testing.T) {
	dataset, model := writeFixtures(t)
	png := filepath.Join(t.TempDir(), "digit.png")
	opts := parse(t, "-dataset", dataset, "-model", model, "-steps", "0", "-start", "2", "-topk", "2", "-png", png, "-ascii")
	var out bytes.Buffer
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "idx : 2 ,") || !strings.Contains(out.String(), "  #1 idx : 2 ,") {
		t.Fatalf("output:\n%s", out.String())
	}
	if _, err := os.Stat(png); err != nil {
		t.Fatal(err)
	}
}

func TestRunBatch(t *testing.T) {
	dataset, model := writeFixtures(t)
	opts := parse(t, "-dataset", dataset, "-model", model, "-batch", "-limit", "2")
	var out bytes.Buffer
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	for class := 0; class < 3; class++ {
		if !strings.Contains(out.String(), "[class "+strconv.Itoa(class)+"] 1 samples") {
			t.Fatalf("output:\n%s", out.String())
		}
	}
}

func TestRunLoadErrors(t *testing.T) {
	dataset, model := writeFixtures(t)
	missing := filepath.Join(t.TempDir(), "missing.json.lzw")
	if err := run(context.Background(), parse(t, "-dataset", dataset, "-model", missing), io.Discard); err == nil {
		t.Fatal("missing model accepted")
	}
	if err := run(context.Background(), parse(t, "-dataset", missing+".csv", "-model", model), io.Discard); err == nil {
		t.Fatal("missing dataset accepted")
	}
	if err := run(context.Background(), parse(t, "-dataset", dataset, "-model", model, "-start", "7"), io.Discard); err == nil {
		t.Fatal("start past the end accepted")
	}
}

func TestValidate(t *testing.T) {
	for _, args := range [][]string{
		{"-steps", "-1"},
		{"-scale", "0"},
		{"-start", "-2"},
		{"-labels", "x.gz"},
		{"-model", " "},
	} {
		fs := flag.NewFlagSet("infer_mnist", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if _, err := parseFlags(fs, args); err == nil {
			t.Errorf("%v accepted", args)
		}
	}
}
