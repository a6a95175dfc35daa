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
    `github.com/jkrishmys/regmarshal/internal/rt`
)

// IsHFA reports whether the destination is a homogeneous float/vector
// aggregate spread over a run of floating registers.
func (self *ArgDestination) IsHFA() bool {
    return self.IsStructPassedInRegs() && self.layout.Form() == abi.FormHomogeneous
}

// CopyHFAStructToRegister enregisters each field of a homogeneous
// float/vector aggregate.
func (self *ArgDestination) CopyHFAStructToRegister(src unsafe.Pointer, fieldBytes int) {
    assert(self.IsHFA(), "not a homogeneous aggregate")
    self.copier.copyStruct(self, src, fieldBytes, 0)
    addCopy()
}

// homogeneousCopier enregisters a homogeneous float/vector aggregate as a
// contiguous run of same-sized fields, one full-width floating slot each.
type homogeneousCopier struct{}

func (homogeneousCopier) copyStruct(d *ArgDestination, src unsafe.Pointer, fieldBytes int, destOffset int) {
    loc := d.layout
    size := loc.HfaFieldSize

    assert(destOffset == 0, "homogeneous aggregates never start mid-struct")
    assert(size == 4 || size == 8 || size == 16, "homogeneous fields are 4, 8 or 16 bytes")
    assert(loc.FloatRegCount * size == fieldBytes, "field run does not cover the declared struct size")
    assert(d.conv.FloatSlotSize == defs.WideSlotSize, "homogeneous aggregates need full-width floating slots")

    dest := d.StructFloatRegAddress()
    for i := 0; i < loc.FloatRegCount; i++ {
        /* copy 4 or 8 bytes from src, always store a full slot */
        if size == 4 {
            rt.Store64(dest, uint64(rt.Load32(src)))
        } else {
            rt.Store64(dest, rt.Load64(src))
        }

        /* second half of the slot: rest of a 16-byte vector, or zeroes */
        if size == defs.MaxHfaFieldSize {
            rt.Store64(unsafe.Add(dest, defs.EightbyteSize), rt.Load64(unsafe.Add(src, defs.EightbyteSize)))
        } else {
            rt.Store64(unsafe.Add(dest, defs.EightbyteSize), 0)
        }

        dest = unsafe.Add(dest, defs.WideSlotSize)
        src = unsafe.Add(src, size)
    }
}

func (self homogeneousCopier) zeroStruct(d *ArgDestination, fieldBytes int) {
    var zeros [defs.MaxHfaFields * defs.MaxHfaFieldSize / defs.EightbyteSize]uint64
    assert(fieldBytes <= defs.MaxHfaFields * defs.MaxHfaFieldSize, "struct too large to be passed in registers")
    self.copyStruct(d, unsafe.Pointer(&zeros[0]), fieldBytes, 0)
}

func (homogeneousCopier) reportPointers(d *ArgDestination, fn PromoteFunc, sc unsafe.Pointer, fieldBytes int) {
    assert(false, "homogeneous aggregates carry no managed references")
}
