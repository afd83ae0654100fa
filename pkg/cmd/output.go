package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/openshift/restclient-go/pkg/model"
	"sigs.k8s.io/yaml"
)

// printResource writes res to w in the given format
func printResource(w io.Writer, res model.Resource, format string) error {
	switch format {
	case OutputJSON:
		raw, err := res.JSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case OutputYAML:
		raw, err := res.JSON()
		if err != nil {
			return err
		}
		out, err := yaml.JSONToYAML(raw)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return printSummary(w, res)
	}
}

// printSummary writes the identity of res and, for collections, of
// every item
func printSummary(w io.Writer, res model.Resource) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "KIND\t%s\n", res.Kind())
	fmt.Fprintf(tw, "API VERSION\t%s\n", res.APIVersion())
	fmt.Fprintf(tw, "TYPE\t%T\n", res)
	if name := res.Name(); name != "" {
		fmt.Fprintf(tw, "NAME\t%s\n", name)
	}
	if ns := res.Namespace(); ns != "" {
		fmt.Fprintf(tw, "NAMESPACE\t%s\n", ns)
	}
	if rv := res.ResourceVersion(); rv != "" {
		fmt.Fprintf(tw, "RESOURCE VERSION\t%s\n", rv)
	}

	if list, ok := res.(*model.List); ok {
		fmt.Fprintf(tw, "ITEMS\t%d\n", list.Len())
		err := list.Each(func(i int, item model.Resource) error {
			_, err := fmt.Fprintf(tw, "  %d\t%s/%s\t%T\n", i, item.Kind(), item.Name(), item)
			return err
		})
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
