package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/carteira/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `carteira topic [-l] [<topic>...]

  Shows documentation for the given topics, '*' for all of them. Without topic,
  shows the index.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := allTopics()
		if err != nil {
			return fail(err)
		}
		for _, t := range topics {
			fmt.Fprintf(stdout, "%-10s %s\n", t, docs.Title(t))
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// allTopics lists the topic names, the index included.
func allTopics() ([]string, error) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil, err
	}
	return append([]string{"readme"}, topics...), nil
}
