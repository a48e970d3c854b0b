// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

// DisjointSet maintains a partition of elements into equivalence classes,
// supporting efficient union and membership queries (union-find).  Elements
// are registered lazily: any element not previously seen forms its own
// singleton class.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]uint
}

// NewDisjointSet constructs an empty partition.
func NewDisjointSet[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{
		parent: make(map[T]T),
		rank:   make(map[T]uint),
	}
}

// Find returns the representative of the class containing a given element.
// Two elements are in the same class iff their representatives are equal.
// Paths are compressed as a side effect.
func (p *DisjointSet[T]) Find(element T) T {
	root, ok := p.parent[element]
	//
	if !ok {
		p.parent[element] = element
		return element
	}
	//
	if root != element {
		root = p.Find(root)
		p.parent[element] = root
	}
	//
	return root
}

// Union merges the classes containing two given elements.  Merging by rank
// keeps the forest shallow.
func (p *DisjointSet[T]) Union(first T, second T) {
	x := p.Find(first)
	y := p.Find(second)
	//
	if x == y {
		return
	}
	//
	if p.rank[x] < p.rank[y] {
		x, y = y, x
	}
	//
	p.parent[y] = x
	//
	if p.rank[x] == p.rank[y] {
		p.rank[x]++
	}
}

// Classes returns all classes of two or more elements, keyed by
// representative.  Singleton classes are omitted, since an element
// equivalent only to itself carries no information.
func (p *DisjointSet[T]) Classes() map[T][]T {
	classes := make(map[T][]T)
	//
	for element := range p.parent {
		root := p.Find(element)
		classes[root] = append(classes[root], element)
	}
	//
	for root, members := range classes {
		if len(members) < 2 {
			delete(classes, root)
		}
	}
	//
	return classes
}
