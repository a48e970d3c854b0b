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

import "testing"

func TestFindSingleton(t *testing.T) {
	ds := NewDisjointSet[string]()
	//
	if ds.Find("a") != "a" {
		t.Errorf("singleton is not its own representative")
	}
}

func TestUnionPair(t *testing.T) {
	ds := NewDisjointSet[string]()
	ds.Union("a", "b")
	//
	if ds.Find("a") != ds.Find("b") {
		t.Errorf("a and b not in same class")
	}
}

func TestUnionTransitive(t *testing.T) {
	ds := NewDisjointSet[string]()
	ds.Union("a", "b")
	ds.Union("b", "c")
	//
	if ds.Find("a") != ds.Find("c") {
		t.Errorf("a and c not in same class")
	}
}

func TestUnionIdempotent(t *testing.T) {
	ds := NewDisjointSet[string]()
	ds.Union("a", "b")
	ds.Union("a", "b")
	ds.Union("b", "a")
	//
	if n := len(ds.Classes()); n != 1 {
		t.Errorf("expected 1 class, got %d", n)
	}
}

func TestClasses(t *testing.T) {
	ds := NewDisjointSet[int]()
	ds.Union(1, 2)
	ds.Union(2, 3)
	ds.Union(10, 11)
	// Singleton, should not appear.
	ds.Find(99)
	//
	classes := ds.Classes()
	//
	if len(classes) != 2 {
		t.Errorf("expected 2 classes, got %d", len(classes))
	}
	//
	for _, members := range classes {
		if len(members) != 3 && len(members) != 2 {
			t.Errorf("unexpected class size %d", len(members))
		}
	}
}
