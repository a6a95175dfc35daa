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

// eightbyteCopier walks the System V eightbyte classification list of an
// aggregate, routing each chunk to the floating or general-purpose bank.
type eightbyteCopier struct{}

func (eightbyteCopier) copyStruct(d *ArgDestination, src unsafe.Pointer, fieldBytes int, destOffset int) {
    eb := d.layout.Eightbytes
    assert(eb != nil, "eightbyte walk without a classification list")
    assert(destOffset % defs.EightbyteSize == 0, "destOffset must be eightbyte-aligned")

    nb := eb.NumEightbytes()
    remain := fieldBytes
    genReg := unsafe.Add(d.StructGenRegAddress(), destOffset)
    floatReg := d.StructFloatRegAddress()

    /* start at the first eightbyte the destOffset did not skip completely */
    for i := destOffset / defs.EightbyteSize; i < nb; i++ {
        size := eb.EightbyteSize(i)
        class := eb.EightbyteClass(i)

        /* adjust the first eightbyte by the sub-eightbyte part of the offset */
        size -= destOffset % defs.EightbyteSize
        destOffset = 0
        assert(remain >= size, "eightbyte walk ran past the declared struct size")

        if class.IsFloat() {
            /* floating slots are FloatSlotSize apart, only the low bytes
             * used: sub-eightbyte chunks are zero-extended, never NaN-boxed */
            if size == defs.EightbyteSize {
                rt.Store64(floatReg, rt.Load64(src))
            } else {
                assert(size > 0 && size < defs.EightbyteSize, "floating eightbytes are at most 8 bytes")
                rt.Store64(floatReg, rt.LoadZx(src, size))
            }
            floatReg = unsafe.Add(floatReg, d.conv.FloatSlotSize)
        } else {
            /* integer bank advances by the eightbyte's actual size */
            if size == defs.EightbyteSize {
                assert(rt.IsAligned(genReg, defs.EightbyteSize), "unaligned general-purpose register slot")
                rt.Store64(genReg, rt.Load64(src))
            } else {
                assert(class == abi.ClassInteger, "reference eightbytes are always full pointers")
                rt.MoveBytes(genReg, src, size)
            }
            genReg = unsafe.Add(genReg, size)
        }

        src = unsafe.Add(src, size)
        remain -= size
    }

    assert(remain == 0, "eightbyte walk did not consume the declared struct size")
}

func (self eightbyteCopier) zeroStruct(d *ArgDestination, fieldBytes int) {
    var zeros [defs.MaxEightbytes]uint64
    assert(fieldBytes <= defs.MaxSysVStructBytes, "struct too large to be passed in registers")
    self.copyStruct(d, unsafe.Pointer(&zeros[0]), fieldBytes, 0)
}

func (eightbyteCopier) reportPointers(d *ArgDestination, fn PromoteFunc, sc unsafe.Pointer, fieldBytes int) {
    eb := d.layout.Eightbytes
    assert(eb != nil, "eightbyte walk without a classification list")

    nb := eb.NumEightbytes()
    remain := fieldBytes
    genReg := d.StructGenRegAddress()

    for i := 0; i < nb; i++ {
        size := eb.EightbyteSize(i)
        class := eb.EightbyteClass(i)
        assert(remain >= size, "eightbyte walk ran past the declared struct size")

        /* floating eightbytes can never carry references */
        if !class.IsFloat() {
            if class.IsReference() {
                assert(size == defs.EightbyteSize, "reference eightbytes are always full pointers")
                assert(rt.IsAligned(genReg, defs.EightbyteSize), "unaligned general-purpose register slot")
                if class == abi.ClassIntegerByRef {
                    fn(genReg, sc, GCCallInterior)
                } else {
                    fn(genReg, sc, 0)
                }
            }
            genReg = unsafe.Add(genReg, size)
        }

        remain -= size
    }

    assert(remain == 0, "eightbyte walk did not consume the declared struct size")
}
