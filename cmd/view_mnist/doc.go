// Package main opens a desktop window showing one MNIST sample at a time
// together with the classifier's prediction. Space, Enter, the right arrow
// key or a left click advance to the next sample; Escape quits.
package main
