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

package argdest

import (
    `github.com/jkrishmys/regmarshal/internal/opts`
)

/* Every failure in this package is an invariant violation, the call site
 * was already committed to machine code that expects the classification to
 * be correct. Nothing is surfaced as an error value. */

func assert(cond bool, msg string) {
    if opts.StrictChecks && !cond {
        panic("regmarshal: " + msg)
    }
}
