// Copyright © 2025 Mike Kowalski <mike@flintcore.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package perft

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// Run checks each expectation against the engine using the bare perft
// command spelling, and additionally the go perft spelling when both is
// set. The first mismatch or engine error fails the run; a wrong node
// count indicates a genuine move generation defect, so nothing is
// retried.
func Run(client *uci.Client, cases []Case, both bool) error {
	for _, expectation := range cases {
		if err := check(expectation, "perft", client.Perft); err != nil {
			return err
		}

		if !both {
			continue
		}

		if err := check(expectation, "go perft", client.GoPerft); err != nil {
			return err
		}
	}

	return nil
}

func check(expectation Case, spelling string, query func(uci.Position, int) (int64, error)) error {
	nodes, err := query(expectation.Position, expectation.Depth)
	if err != nil {
		return fmt.Errorf("perft: case %q (%s): %w", expectation.Name, spelling, err)
	}

	if nodes != expectation.Nodes {
		return fmt.Errorf(
			"perft: case %q (%s): got %d nodes, want %d",
			expectation.Name, spelling, nodes, expectation.Nodes,
		)
	}

	logrus.Infof(
		"\x1b[32mPassed\x1b[0m %s: %s depth %d = %d nodes\n",
		expectation.Name, spelling, expectation.Depth, nodes,
	)
	return nil
}
