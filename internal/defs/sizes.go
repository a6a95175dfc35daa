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

const (
    PtrSize       = 8     // size of an integer register slot, all targets are 64-bit
    EightbyteSize = 8     // unit of System V classification
    WideSlotSize  = 16    // float register slot wide enough for a 128-bit vector
)

const (
    MaxEightbytes      = 2                              // most eightbytes a register-passable SysV struct may span
    MaxSysVStructBytes = MaxEightbytes * EightbyteSize  // largest SysV struct passed in registers
    MaxFpStructBytes   = 16                             // largest combined int/float struct passed in registers
    MaxHfaFields       = 4                              // most fields of a homogeneous float/vector aggregate
    MaxHfaFieldSize    = 16                             // largest homogeneous field, a full vector register
)

const (
    StackArgSlots = 8   // outgoing stack argument slots kept in a transition block
)
