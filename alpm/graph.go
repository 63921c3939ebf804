package alpm

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// BuildGraph generates dependency graph of packages in the list
//
// Every package of the list becomes a node, dependencies are resolved via
// registry. Dependencies outside of the list are drawn as secondary nodes
// when withExternal is set, otherwise such edges are omitted.
func BuildGraph(list *PackageList, registry *Registry, layout string, withExternal bool) (gographviz.Interface, error) {
	graph := gographviz.NewEscape()
	_ = graph.SetDir(true)
	_ = graph.SetName("pacfind")

	if layout == "vertical" {
		_ = graph.AddAttr("pacfind", "rankdir", "LR")
	}

	existingNodes := map[*Package]bool{}

	addNode := func(p *Package, primary bool) error {
		fillcolor := "mediumseagreen"
		if !primary {
			fillcolor = "lightgrey"
		}
		if p.Repository != LocalRepository && primary {
			fillcolor = "cadetblue1"
		}

		existingNodes[p] = true
		return graph.AddNode("pacfind", p.FullName(), map[string]string{
			"shape":     "Mrecord",
			"style":     "filled",
			"fillcolor": fillcolor,
			"label":     fmt.Sprintf("{%s|%s}", p.FullName(), p.Version),
		})
	}

	packages := list.Unique().packages

	for _, p := range packages {
		if err := addNode(p, true); err != nil {
			return nil, err
		}
	}

	for _, p := range packages {
		for _, spec := range p.Depends {
			dep := registry.FindSatisfier(spec)
			if dep == nil || dep == p {
				continue
			}

			if !existingNodes[dep] {
				if !withExternal {
					continue
				}
				if err := addNode(dep, false); err != nil {
					return nil, err
				}
			}

			if err := graph.AddEdge(p.FullName(), dep.FullName(), true, nil); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}
