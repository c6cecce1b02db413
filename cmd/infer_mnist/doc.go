// Package main runs a pretrained MNIST digit classifier over a dataset file.
// Each step prints the prediction for the current sample as
// "idx : <class> , value : <score>", optionally drawing the digit in the
// terminal or to png files. With -batch every sample is classified in
// parallel and a class histogram (and accuracy, given -labels) is printed.
package main
