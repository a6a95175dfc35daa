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

package defs

/* Bit patterns below are part of the documented calling convention
 * contracts, they must be preserved bit-exact. */

const (
    /* upper-half pattern for a single-precision value in a double-precision
     * register, reads as a quiet NaN when misinterpreted at full width */
    RiscVNaNBox uint64 = 0xffffffff00000000

    /* LoongArch pads narrow floating values with zeroes instead */
    LoongArchPad uint64 = 0
)

const (
    /* pattern written over an integer register slot before a sub-word store,
     * catches callees that wrongly assume full-width extension */
    IntRegPoison uint64 = 0xdadaddedc0ffee00
)
