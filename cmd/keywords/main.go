// Command keywords extracts keywords from text and serves the extraction
// HTTP API.
//
//	keywords extract "some text"          # print the top keywords
//	keywords extract -f a.txt -f b.txt    # several documents at once
//	echo "some text" | keywords extract --format json
//	keywords serve --port 5000
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
