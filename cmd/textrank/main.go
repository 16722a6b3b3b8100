// Command textrank extracts keywords and key phrases from text files or
// standard input, evaluates extraction against gold keyphrase sets, and
// serves the same operations over HTTP.
//
//	textrank keywords paper.txt
//	textrank phrases -n 10 -o json < paper.txt
//	textrank graph --format dot paper.txt | dot -Tsvg > graph.svg
//	textrank eval --docs inspec/ --gold inspec/test.uncontr.json --windows 1,2,3
//	textrank serve --config textrank.yaml
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
