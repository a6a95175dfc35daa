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

package opts

import (
    `os`
    `strconv`
)

const (
    _DefaultStrictChecks  = true    // contract checking on register copies
    _DefaultPoisonIntRegs = true    // poison sub-word integer register stores
)

var (
    StrictChecks  = parseOrDefault("REGMARSHAL_STRICT_CHECKS", _DefaultStrictChecks)
    PoisonIntRegs = parseOrDefault("REGMARSHAL_POISON_INT_REGS", _DefaultPoisonIntRegs)
)

func parseOrDefault(key string, defv bool) bool {
    if v := os.Getenv(key); v == "" {
        return defv
    } else if r, err := strconv.ParseBool(v); err != nil {
        panic("regmarshal: invalid value for " + key)
    } else {
        return r
    }
}
