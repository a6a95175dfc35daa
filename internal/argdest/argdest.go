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
    `unsafe`

    `github.com/jkrishmys/regmarshal/internal/abi`
    `github.com/jkrishmys/regmarshal/internal/defs`
)

// PromoteFunc is the collector callback invoked once per discovered managed
// reference, with the address of the register slot holding it, the opaque
// scan context, and GCCallInterior when the slot holds an interior pointer.
// This layer never interprets the reference value, only reports where it is.
type PromoteFunc func(slot unsafe.Pointer, sc unsafe.Pointer, flags uint32)

const (
    GCCallInterior uint32 = 1 << 0
)

// ArgDestination is the destination location of one argument: either a flat
// address relative to a transition block, or a register-resident aggregate
// located by an ArgLocDesc. The variant is resolved once at construction.
// Destinations are transient, created per call and never persisted, and the
// base address is borrowed from the enclosing call frame.
type ArgDestination struct {
    conv   *abi.Convention
    base   unsafe.Pointer
    offset int
    layout *abi.ArgLocDesc
    copier structCopier
}

// NewDest makes a flat destination at base + offset, for stack slots and
// simple register slots.
func NewDest(conv *abi.Convention, base unsafe.Pointer, offset int) ArgDestination {
    assert(offset != abi.StructInRegsOffset, "flat destination with the register-resident sentinel offset")
    return ArgDestination {
        conv   : conv,
        base   : base,
        offset : offset,
    }
}

// NewStructDest makes a destination for an aggregate passed in registers.
// The locator is borrowed from the classifier and binds the copy algorithm
// here, once.
func NewStructDest(conv *abi.Convention, base unsafe.Pointer, layout *abi.ArgLocDesc) ArgDestination {
    assert(layout != nil, "register-resident aggregate without a locator")
    return ArgDestination {
        conv   : conv,
        base   : base,
        offset : abi.StructInRegsOffset,
        layout : layout,
        copier : structCopierOf(layout.Form()),
    }
}

// GetDestinationAddress returns base + offset. Only meaningful when the
// argument is not a struct passed in registers.
func (self *ArgDestination) GetDestinationAddress() unsafe.Pointer {
    assert(!self.IsStructPassedInRegs(), "register-resident aggregates have no single destination address")
    return unsafe.Add(self.base, self.offset)
}

// IsStructPassedInRegs gates every struct-in-registers operation, callers
// must check it before any of the struct-specific calls below.
func (self *ArgDestination) IsStructPassedInRegs() bool {
    return self.copier != nil
}

// IsFloatArgumentRegister reports whether a scalar destination offset lands
// in the floating register save area.
func (self *ArgDestination) IsFloatArgumentRegister() bool {
    return self.conv.IsFloatArgumentRegisterOffset(self.offset)
}

// StructGenRegAddress returns the save slot of the first general-purpose
// register consumed by the aggregate.
func (self *ArgDestination) StructGenRegAddress() unsafe.Pointer {
    assert(self.IsStructPassedInRegs(), "not a struct passed in registers")
    return unsafe.Add(self.base, self.conv.OffsetOfArgumentRegisters() + self.layout.GenRegIndex * defs.PtrSize)
}

// StructFloatRegAddress returns the save slot of the first floating
// register consumed by the aggregate.
func (self *ArgDestination) StructFloatRegAddress() unsafe.Pointer {
    assert(self.IsStructPassedInRegs(), "not a struct passed in registers")
    return unsafe.Add(self.base, self.conv.OffsetOfFloatArgumentRegisters() + self.layout.FloatRegIndex * self.conv.FloatSlotSize)
}

// CopyStructToRegisters writes the aggregate's bytes from src into the
// register save slots the locator describes. A nonzero destOffset arises
// only when writing the payload of a nullable wrapper whose tag occupies
// the leading eightbyte(s).
//
// Runs in cooperative mode: no allocation, no blocking, no faults.
func (self *ArgDestination) CopyStructToRegisters(src unsafe.Pointer, fieldBytes int, destOffset int) {
    assert(self.IsStructPassedInRegs(), "not a struct passed in registers")
    self.copier.copyStruct(self, src, fieldBytes, destOffset)
    addCopy()
}

// ZeroStructInRegisters clears the register save slots the aggregate
// occupies. Implemented as a copy from a zero-filled scratch buffer to keep
// all classification handling in the copy path, the operation is rare
// enough that reading zeros back is negligible.
func (self *ArgDestination) ZeroStructInRegisters(fieldBytes int) {
    assert(self.IsStructPassedInRegs(), "not a struct passed in registers")
    self.copier.zeroStruct(self, fieldBytes)
    addZero()
}

// ReportPointersFromStructInRegisters walks the aggregate's classification
// and invokes fn once per register slot holding a managed reference. It
// runs during a collection pause on behalf of the collector and has no side
// effect besides the callback.
func (self *ArgDestination) ReportPointersFromStructInRegisters(fn PromoteFunc, sc unsafe.Pointer, fieldBytes int) {
    assert(self.IsStructPassedInRegs(), "not a struct passed in registers")
    self.copier.reportPointers(self, fn, sc, fieldBytes)
    addReport()
}

// structCopier is the classification-form-specific copy/scan algorithm, one
// implementation per form.
type structCopier interface {
    copyStruct(d *ArgDestination, src unsafe.Pointer, fieldBytes int, destOffset int)
    zeroStruct(d *ArgDestination, fieldBytes int)
    reportPointers(d *ArgDestination, fn PromoteFunc, sc unsafe.Pointer, fieldBytes int)
}

func structCopierOf(form abi.Form) structCopier {
    switch form {
        case abi.FormEightbytes  : return eightbyteCopier{}
        case abi.FormHomogeneous : return homogeneousCopier{}
        case abi.FormCombined    : return combinedCopier{}
        default                  : panic("regmarshal: locator carries no classification payload")
    }
}
