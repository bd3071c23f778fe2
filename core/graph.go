// Copyright 2024-2026 The gce-deleter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"

	"github.com/gcedeploy/gce-deleter/version"
	"github.com/shivamMg/ppds/tree"
)

// Graph リソース種別ごとのResourceDeleterの有効/無効を木構造で表す
type Graph struct {
	config   *Config
	children []tree.Node
}

func NewGraph(c *Config) *Graph {
	return &Graph{config: c}
}

func (g *Graph) Data() interface{} {
	return fmt.Sprintf("gce-deleter v%s", version.Version)
}

func (g *Graph) Children() []tree.Node {
	return g.children
}

// Tree 木構造を文字列で返す
func (g *Graph) Tree() string {
	enabled := &GroupNode{name: "enabled"}
	disabled := &GroupNode{name: "disabled"}
	for _, d := range BuiltinDeleters(nil) {
		node := &DeleterNode{name: d.Name(), scope: "zonal"}
		if g.config.deleterDisabled(d.Name()) {
			disabled.children = append(disabled.children, node)
			continue
		}
		enabled.children = append(enabled.children, node)
	}

	g.children = []tree.Node{enabled}
	if len(disabled.children) > 0 {
		g.children = append(g.children, disabled)
	}
	return tree.SprintHrn(g)
}

type GroupNode struct {
	name     string
	children []tree.Node
}

func (n *GroupNode) Data() interface{} {
	return n.name
}

func (n *GroupNode) Children() []tree.Node {
	return n.children
}

type DeleterNode struct {
	name  string
	scope string
}

func (n *DeleterNode) Data() interface{} {
	return fmt.Sprintf("%s (%s)", n.name, n.scope)
}

func (n *DeleterNode) Children() []tree.Node {
	return nil
}
