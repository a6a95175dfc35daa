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

package abi

import (
    `fmt`

    `github.com/chenzhuoyu/iasm/x86_64`
    `github.com/jkrishmys/regmarshal/internal/defs`
)

// StructInRegsOffset is the reserved destination offset meaning "this
// argument is a register-resident aggregate, consult the locator instead".
// All real offsets into a transition block are non-negative.
const StructInRegsOffset = -1

// Form selects the classification payload carried by an ArgLocDesc, and
// with it the copy algorithm applied to the aggregate.
type Form uint8

const (
    FormNone        Form = iota
    FormEightbytes       // System V eightbyte list
    FormHomogeneous      // homogeneous float/vector aggregate
    FormCombined         // combined integer/float register pair
)

// Convention is the calling-convention metadata of one target architecture.
// Instances are immutable, the four supported targets are package variables.
type Convention struct {
    Name          string
    IntRegs       int       // argument registers in the general-purpose bank
    FloatRegs     int       // argument registers in the floating bank
    FloatSlotSize int       // bytes between floating register save slots
    NaNBox        uint64    // upper-half pattern for narrow floats, zero = pad
    Poison        uint64    // debug fill for sub-word integer stores, zero = none
    IntRegNames   []string
    FloatRegNames []string
}

var SysVAMD64 = &Convention {
    Name          : "sysv-amd64",
    IntRegs       : 6,
    FloatRegs     : 8,
    FloatSlotSize : defs.WideSlotSize,
    IntRegNames   : amd64IntRegNames(),
    FloatRegNames : amd64FloatRegNames(),
}

var AAPCS64 = &Convention {
    Name          : "aapcs64",
    IntRegs       : 8,
    FloatRegs     : 8,
    FloatSlotSize : defs.WideSlotSize,
    IntRegNames   : regNames("x", 8),
    FloatRegNames : regNames("v", 8),
}

var RVA64 = &Convention {
    Name          : "rva64",
    IntRegs       : 8,
    FloatRegs     : 8,
    FloatSlotSize : defs.PtrSize,
    NaNBox        : defs.RiscVNaNBox,
    Poison        : defs.IntRegPoison,
    IntRegNames   : regNames("a", 8),
    FloatRegNames : regNames("fa", 8),
}

var LA64 = &Convention {
    Name          : "la64",
    IntRegs       : 8,
    FloatRegs     : 8,
    FloatSlotSize : defs.PtrSize,
    NaNBox        : defs.LoongArchPad,
    IntRegNames   : regNames("a", 8),
    FloatRegNames : regNames("fa", 8),
}

/* Transition block layout: the floating register save area sits at the
 * start, the general-purpose save area follows it, then a small region of
 * outgoing stack argument slots. Offsets are fixed per convention and
 * indexable by zero-based logical register slot. */

func (self *Convention) OffsetOfFloatArgumentRegisters() int {
    return 0
}

func (self *Convention) OffsetOfArgumentRegisters() int {
    return self.FloatRegs * self.FloatSlotSize
}

func (self *Convention) OffsetOfStackArgs() int {
    return self.OffsetOfArgumentRegisters() + self.IntRegs * defs.PtrSize
}

func (self *Convention) BlockSize() int {
    return self.OffsetOfStackArgs() + defs.StackArgSlots * defs.PtrSize
}

// IsFloatArgumentRegisterOffset reports whether a scalar destination offset
// lies within the floating register save sub-range. Scalar floats and
// integers occupy disjoint banks.
func (self *Convention) IsFloatArgumentRegisterOffset(offset int) bool {
    return offset >= 0 && offset < self.OffsetOfArgumentRegisters()
}

func (self *Convention) String() string {
    return fmt.Sprintf("{%s,%dg,%df}", self.Name, self.IntRegs, self.FloatRegs)
}

func regNames(prefix string, n int) []string {
    mm := make([]string, n)
    for i := 0; i < n; i++ {
        mm[i] = fmt.Sprintf("%s%d", prefix, i)
    }
    return mm
}

var amd64IntArgRegs = [6]x86_64.Register64 {
    x86_64.RDI,
    x86_64.RSI,
    x86_64.RDX,
    x86_64.RCX,
    x86_64.R8,
    x86_64.R9,
}

var amd64FloatArgRegs = [8]x86_64.XMMRegister {
    x86_64.XMM0,
    x86_64.XMM1,
    x86_64.XMM2,
    x86_64.XMM3,
    x86_64.XMM4,
    x86_64.XMM5,
    x86_64.XMM6,
    x86_64.XMM7,
}

func amd64IntRegNames() []string {
    mm := make([]string, len(amd64IntArgRegs))
    for i, r := range amd64IntArgRegs {
        mm[i] = r.String()
    }
    return mm
}

func amd64FloatRegNames() []string {
    mm := make([]string, len(amd64FloatArgRegs))
    for i, r := range amd64FloatArgRegs {
        mm[i] = r.String()
    }
    return mm
}
