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
package linalg

import (
	"fmt"

	"github.com/consensys/go-galois/pkg/field"
)

// StepKind identifies the row operation reported by a Step.
type StepKind uint8

const (
	// StepOriginal reports the (normalised) matrix before reduction starts.
	StepOriginal StepKind = iota
	// StepExchange reports that rows Source and Target were swapped.
	StepExchange
	// StepPivotDown reports that entries below Pivot are about to be
	// eliminated.
	StepPivotDown
	// StepPivotUp reports that entries above Pivot are about to be eliminated.
	StepPivotUp
	// StepAddRow reports that Scalar times row Source was added to row Target.
	StepAddRow
	// StepScale reports that row Target was multiplied by Scalar.
	StepScale
)

// Pivot identifies the position of a leading one in a reduced matrix.
type Pivot struct {
	Row uint
	Col uint
}

// Step is a single event of a row reduction.  Rows are numbered from zero.
type Step struct {
	Kind   StepKind
	Source uint
	Target uint
	Scalar field.Element
	Pivot  Pivot
	// Snapshot of the matrix after the step was applied.  This is not shared
	// with the reduction, so observers may keep it.
	Matrix Matrix
}

// Observer is notified of every step of a row reduction.
type Observer func(Step)

// Describe gives a human-readable account of this step, numbering rows and
// columns from one.
func (s Step) Describe(f field.Field) string {
	switch s.Kind {
	case StepOriginal:
		return "Original matrix."
	case StepExchange:
		return fmt.Sprintf("Exchange rows %d and %d.", s.Source+1, s.Target+1)
	case StepPivotDown:
		return fmt.Sprintf("PLAN: Pivot down from position (%d, %d)", s.Pivot.Row+1, s.Pivot.Col+1)
	case StepPivotUp:
		return fmt.Sprintf("PLAN: Pivot up from position (%d, %d)", s.Pivot.Row+1, s.Pivot.Col+1)
	case StepAddRow:
		return fmt.Sprintf("Added %s times row %d to row %d.", f.Format(s.Scalar), s.Source+1, s.Target+1)
	case StepScale:
		return fmt.Sprintf("Scale row %d by %s.", s.Target+1, f.Format(s.Scalar))
	}
	//
	panic(fmt.Sprintf("unknown step kind %d", s.Kind))
}

// Rows returns the rows affected by this step.
func (s Step) Rows() []uint {
	switch s.Kind {
	case StepExchange:
		return []uint{s.Source, s.Target}
	case StepAddRow, StepScale:
		return []uint{s.Target}
	case StepPivotDown, StepPivotUp:
		return []uint{s.Pivot.Row}
	}
	//
	return nil
}
