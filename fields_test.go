/*
Copyright © 2026 the flood authors.
This file is part of flood.

flood is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

flood is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with flood.  If not, see <http://www.gnu.org/licenses/>.
*/

package flood

import "testing"

func TestGetFieldUnknownName(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	if _, err := g.GetField("bogus"); err == nil {
		t.Fatal("expected an UnknownFieldError")
	} else if _, ok := err.(*UnknownFieldError); !ok {
		t.Errorf("expected *UnknownFieldError, got %T", err)
	}
}

func TestGetFieldKnownName(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	g.H.Set(1, 1, 3)
	f, err := g.GetField("h")
	if err != nil {
		t.Fatal(err)
	}
	if f.At(1, 1) != 3 {
		t.Errorf("GetField(\"h\") did not alias the grid's H field")
	}
}

func TestSetFieldShapeMismatch(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	bad := NewField(4, 4)
	err := g.SetField("h", bad)
	if err == nil {
		t.Fatal("expected a ShapeError")
	}
	if _, ok := err.(*ShapeError); !ok {
		t.Errorf("expected *ShapeError, got %T", err)
	}
}

func TestSetFieldCopiesValues(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	vals := NewField(3, 3)
	vals.Set(1, 1, 9)
	if err := g.SetField("h", vals); err != nil {
		t.Fatal(err)
	}
	if g.H.At(1, 1) != 9 {
		t.Errorf("SetField did not copy values into the grid")
	}
	// Mutating the source afterward must not affect the grid's copy.
	vals.Set(1, 1, 0)
	if g.H.At(1, 1) != 9 {
		t.Errorf("SetField should copy, not alias, the source field")
	}
}

func TestSetFieldUnknownName(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	if err := g.SetField("bogus", NewField(3, 3)); err == nil {
		t.Fatal("expected an UnknownFieldError")
	}
}
