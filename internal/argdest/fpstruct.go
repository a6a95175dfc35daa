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
    `github.com/jkrishmys/regmarshal/internal/opts`
    `github.com/jkrishmys/regmarshal/internal/rt`
)

// combinedCopier places an aggregate of at most two scalar sub-fields per
// the hardware floating-point calling convention: one field may go to a
// floating register and the other to a general-purpose register, or both to
// floating registers, or a single field alone.
type combinedCopier struct{}

func (combinedCopier) copyStruct(d *ArgDestination, src unsafe.Pointer, fieldBytes int, destOffset int) {
    loc := d.layout
    info := loc.Fields
    flags := info.Flags

    assert(destOffset == 0, "combined-field aggregates never start mid-struct")
    assert(fieldBytes <= defs.MaxFpStructBytes, "struct too large to be passed by the FP convention")
    assert(d.conv.FloatSlotSize == defs.PtrSize, "combined-field aggregates use native-width floating slots")
    assert(loc.FloatRegCount == floatRegsFor(flags), "float register count does not match the field flags")
    assert(loc.GenRegCount == genRegsFor(flags), "integer register count does not match the field flags")
    assert(int(info.Offset2nd) + info.Size2nd() <= fieldBytes, "second field lies past the declared struct size")

    floatReg := d.StructFloatRegAddress()

    /* first floating field */
    if flags & (abi.FpOnlyOne | abi.FpBothFloat | abi.FpFloatInt) != 0 {
        field := unsafe.Add(src, info.Offset1st)
        if info.SizeShift1st() == 3 {
            rt.Store64(floatReg, rt.Load64(field))
        } else {
            rt.Store64(floatReg, d.conv.NaNBox | uint64(rt.Load32(field)))
        }
        floatReg = unsafe.Add(floatReg, d.conv.FloatSlotSize)
    }

    /* second floating field */
    if flags & (abi.FpBothFloat | abi.FpIntFloat) != 0 {
        field := unsafe.Add(src, info.Offset2nd)
        if info.SizeShift2nd() == 3 {
            rt.Store64(floatReg, rt.Load64(field))
        } else {
            rt.Store64(floatReg, d.conv.NaNBox | uint64(rt.Load32(field)))
        }
    }

    /* integer field */
    if flags & (abi.FpFloatInt | abi.FpIntFloat) != 0 {
        intReg := d.StructGenRegAddress()

        /* the integer field of a struct passed by the FP convention is not
         * type-extended to full register length, trash the upper bits so a
         * callee wrongly assuming extension gets a bad value */
        if opts.PoisonIntRegs && d.conv.Poison != 0 {
            rt.Store64(intReg, d.conv.Poison)
        }

        offset := info.Offset2nd
        shift := info.SizeShift2nd()
        if flags & abi.FpIntFloat != 0 {
            offset = info.Offset1st
            shift = info.SizeShift1st()
        }

        field := unsafe.Add(src, offset)
        switch shift {
            case 0  : rt.Store8(intReg, rt.Load8(field))
            case 1  : rt.Store16(intReg, rt.Load16(field))
            case 2  : rt.Store32(intReg, rt.Load32(field))
            default : rt.Store64(intReg, rt.Load64(field))
        }
    }
}

func (self combinedCopier) zeroStruct(d *ArgDestination, fieldBytes int) {
    var zeros [defs.MaxFpStructBytes / defs.EightbyteSize]uint64
    assert(fieldBytes <= defs.MaxFpStructBytes, "struct too large to be passed by the FP convention")
    self.copyStruct(d, unsafe.Pointer(&zeros[0]), fieldBytes, 0)
}

func (combinedCopier) reportPointers(d *ArgDestination, fn PromoteFunc, sc unsafe.Pointer, fieldBytes int) {
    assert(false, "combined-field aggregates carry no managed references")
}

func floatRegsFor(flags abi.FpStructFlags) int {
    if flags & abi.FpBothFloat != 0 {
        return 2
    } else {
        return 1
    }
}

func genRegsFor(flags abi.FpStructFlags) int {
    if flags & (abi.FpFloatInt | abi.FpIntFloat) != 0 {
        return 1
    } else {
        return 0
    }
}

// CopySingleFloatToRegister routes a lone single-precision value to its
// destination. The same logical value can end up in either bank depending
// on which registers remain free: a floating register slot gets the value
// NaN-boxed, an integer register or stack slot gets the raw 4 bytes with
// the upper bits left unspecified.
func (self *ArgDestination) CopySingleFloatToRegister(src unsafe.Pointer) {
    assert(!self.IsStructPassedInRegs(), "single scalar floats are not register-resident aggregates")

    dest := self.GetDestinationAddress()
    value := rt.Load32(src)

    if self.IsFloatArgumentRegister() {
        rt.Store64(dest, self.conv.NaNBox | uint64(value))
    } else {
        rt.Store32(dest, value)
    }
}
