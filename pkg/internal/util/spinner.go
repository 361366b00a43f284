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

package util

import (
	"time"

	"github.com/briandowns/spinner"
)

// The charset of the ~working~ spinner.
const spin = 14

var working = spinner.New(spinner.CharSets[spin], 100*time.Millisecond)

func StartSpinner() {
	working.Start()
}

func PauseSpinner() {
	working.Stop()
}
