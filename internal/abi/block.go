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
    `unsafe`

    `github.com/bytedance/gopkg/lang/dirtmake`
    `github.com/jkrishmys/regmarshal/internal/defs`
    `github.com/jkrishmys/regmarshal/internal/opts`
)

// Block is one transition block: the register save areas and outgoing stack
// slots of a single call frame, laid out per its Convention. A Block is
// exclusively owned by the executing call frame for the duration of the
// call, no synchronization is needed over its contents.
type Block struct {
    conv *Convention
    mem  []byte
}

// NewBlock allocates a transition block for one call. The memory is not
// zeroed, every slot the call uses is fully written by the marshaling path
// before anything reads it back.
func NewBlock(conv *Convention) *Block {
    return &Block {
        conv : conv,
        mem  : dirtmake.Bytes(conv.BlockSize(), conv.BlockSize()),
    }
}

// Base returns the address argument offsets are relative to. The view is
// borrowed, the Block must stay live for the duration of the marshaling
// call.
func (self *Block) Base() unsafe.Pointer {
    return unsafe.Pointer(&self.mem[0])
}

func (self *Block) Conv() *Convention {
    return self.conv
}

// IntSlot returns the address of the i-th general-purpose register save
// slot.
func (self *Block) IntSlot(i int) unsafe.Pointer {
    self.check(i, self.conv.IntRegs, "general-purpose")
    return unsafe.Add(self.Base(), self.conv.OffsetOfArgumentRegisters() + i * defs.PtrSize)
}

// FloatSlot returns the address of the i-th floating register save slot.
func (self *Block) FloatSlot(i int) unsafe.Pointer {
    self.check(i, self.conv.FloatRegs, "floating")
    return unsafe.Add(self.Base(), self.conv.OffsetOfFloatArgumentRegisters() + i * self.conv.FloatSlotSize)
}

// StackSlot returns the address of the i-th outgoing stack argument slot.
func (self *Block) StackSlot(i int) unsafe.Pointer {
    self.check(i, defs.StackArgSlots, "stack")
    return unsafe.Add(self.Base(), self.conv.OffsetOfStackArgs() + i * defs.PtrSize)
}

// IntSlotOffset returns the destination offset addressing the i-th
// general-purpose register save slot.
func (self *Block) IntSlotOffset(i int) int {
    self.check(i, self.conv.IntRegs, "general-purpose")
    return self.conv.OffsetOfArgumentRegisters() + i * defs.PtrSize
}

// FloatSlotOffset returns the destination offset addressing the i-th
// floating register save slot.
func (self *Block) FloatSlotOffset(i int) int {
    self.check(i, self.conv.FloatRegs, "floating")
    return self.conv.OffsetOfFloatArgumentRegisters() + i * self.conv.FloatSlotSize
}

// StackSlotOffset returns the destination offset addressing the i-th
// outgoing stack argument slot.
func (self *Block) StackSlotOffset(i int) int {
    self.check(i, defs.StackArgSlots, "stack")
    return self.conv.OffsetOfStackArgs() + i * defs.PtrSize
}

func (self *Block) check(i int, n int, area string) {
    if opts.StrictChecks && (i < 0 || i >= n) {
        panic("regmarshal: " + area + " register slot out of range")
    }
}
