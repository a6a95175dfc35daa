/*
 * Copyright 2024 jkrishmys
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package debug

import (
    `github.com/jkrishmys/regmarshal/internal/argdest`
)

// A Stats records statistics about the register marshaling layer.
type Stats struct {
    Copies  int64
    Zeroes  int64
    Reports int64
}

// GetStats returns statistics of the register marshaling layer.
func GetStats() Stats {
    return Stats {
        Copies  : argdest.CopyCount(),
        Zeroes  : argdest.ZeroCount(),
        Reports : argdest.ReportCount(),
    }
}
