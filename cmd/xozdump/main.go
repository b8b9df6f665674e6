// Command xozdump loads an XML file into a Document and either prints its
// node tree in document order or runs one of a handful of canonical
// navigation queries against it.
//
// Grounded on clems4ever-arbor-encoder's cmd/root.go + cmd/tokenize.go
// split (a cobra root command with file-argument subcommands) and
// moznion-helium's dump.go Dumper (recursive open/close/leaf emission
// driven by node type) for the shape of the "dump" subcommand's walk; the
// output here indents each nesting level by two spaces.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	xoz "github.com/Paligo/xoz-sub000"
	"github.com/Paligo/xoz-sub000/pool"
	"github.com/Paligo/xoz-sub000/xmladapter"
)

var rootCmd = &cobra.Command{
	Use:   "xozdump",
	Short: "Inspect the succinct in-memory index built from an XML file",
	Long: `xozdump parses an XML file into an immutable, succinct document
index and lets you inspect the result: its structure, its memory
footprint, or the outcome of a canonical navigation query.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(compareCmd)
}

func loadFile(path string) (*xoz.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return xmladapter.Parse(f)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [xml_file]",
	Short: "Print the document-order node structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadFile(args[0])
		if err != nil {
			return err
		}
		printTree(os.Stdout, doc, doc.Root(), 0)
		return nil
	},
}

func printTree(out *os.File, doc *xoz.Document, n xoz.NodeID, depth int) {
	indent := strings.Repeat("  ", depth)
	nt := doc.NodeType(n)
	switch nt.Kind {
	case xoz.KindText:
		text, _ := doc.StringValue(n)
		fmt.Fprintf(out, "%s#text %q\n", indent, text)
		return
	case xoz.KindComment:
		text, _ := doc.StringValue(n)
		fmt.Fprintf(out, "%s<!--%s-->\n", indent, text)
		return
	case xoz.KindProcessingInstruction:
		fmt.Fprintf(out, "%s<?%s %s?>\n", indent, doc.PITarget(n), doc.PIData(n))
		return
	case xoz.KindElement:
		fmt.Fprintf(out, "%s<%s>\n", indent, elementLabel(nt))
	case xoz.KindDocument:
		fmt.Fprintf(out, "%s#document\n", indent)
	default:
		fmt.Fprintf(out, "%s%s\n", indent, nt.Kind)
	}

	for c, ok := doc.FirstChild(n); ok; c, ok = doc.NextSibling(c) {
		printTree(out, doc, c, depth+1)
	}
}

func elementLabel(nt xoz.NodeType) string {
	if nt.Name.Namespace == "" {
		return nt.Name.Local
	}
	return nt.Name.Namespace + ":" + nt.Name.Local
}

var statsCmd = &cobra.Command{
	Use:   "stats [xml_file]",
	Short: "Print node count and approximate memory footprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("nodes:     %d\n", doc.NodeCount())
		fmt.Printf("heap size: %d bytes\n", doc.HeapSize())
		return nil
	},
}

var queryName string

var queryCmd = &cobra.Command{
	Use:   "query [xml_file]",
	Short: "Run a canonical navigation query against the document element",
	Long: `Supported --query values: children, descendants, ancestors,
following-siblings, preceding-siblings, attributes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadFile(args[0])
		if err != nil {
			return err
		}
		root, ok := doc.DocumentElement()
		if !ok {
			return fmt.Errorf("document has no document element")
		}

		var nodes []xoz.NodeID
		switch queryName {
		case "children":
			nodes = doc.Children(root)
		case "descendants":
			nodes = doc.Descendants(root)
		case "ancestors":
			nodes = doc.Ancestors(root)
		case "following-siblings":
			nodes = doc.FollowingSiblings(root)
		case "preceding-siblings":
			nodes = doc.PrecedingSiblings(root)
		case "attributes":
			nodes = doc.Attributes(root)
		default:
			return fmt.Errorf("unknown --query %q", queryName)
		}

		for _, n := range nodes {
			fmt.Printf("%d\t%s\n", n, doc.NodeType(n).Kind)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryName, "query", "q", "children", "axis to run against the document element")
}

var compareCmd = &cobra.Command{
	Use:   "compare [xml_file_a] [xml_file_b]",
	Short: "Load two documents into a pool and show that their roots never compare equal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pool.New()
		handles := make([]pool.Handle, 0, len(args))
		docs := make([]*xoz.Document, 0, len(args))
		for i, path := range args {
			doc, err := loadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			handles = append(handles, p.Add(doc))
			docs = append(docs, doc)
			fmt.Printf("doc %d: %s (%d nodes)\n", i, path, doc.NodeCount())
		}
		refA := pool.Ref{Doc: handles[0], Node: docs[0].Root()}
		refB := pool.Ref{Doc: handles[1], Node: docs[1].Root()}
		fmt.Printf("root(a) == root(b): %v\n", refA.Equal(refB))
		return nil
	},
}
