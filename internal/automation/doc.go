// Package automation runs batches of independent simulations described in a
// YAML scenario file:
//
//	name: samples
//	runs:
//	  - name: first
//	    preset: example1
//	  - name: first-period
//	    preset: example1
//	    mode: period
//	  - name: file
//	    input: moons.txt
//	    steps: 250
//
// Each run owns its state, so runs execute concurrently on a bounded set of
// workers.
package automation
