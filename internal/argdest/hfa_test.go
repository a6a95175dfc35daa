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
    `math`
    `testing`
    `unsafe`

    `github.com/jkrishmys/regmarshal/internal/abi`
    `github.com/jkrishmys/regmarshal/internal/rt`
    `github.com/stretchr/testify/require`
)

func hfaDest(b *abi.Block, count int, size int) ArgDestination {
    return NewStructDest(abi.AAPCS64, b.Base(), &abi.ArgLocDesc {
        FloatRegCount : count,
        HfaFieldSize  : size,
    })
}

func trashFloatSlots(b *abi.Block, n int) {
    for i := 0; i < n; i++ {
        rt.Store64(b.FloatSlot(i), 0xffffffffffffffff)
        rt.Store64(unsafe.Add(b.FloatSlot(i), 8), 0xffffffffffffffff)
    }
}

func TestHFA_FourFloats(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)
    trashFloatSlots(b, 4)

    src := [4]float32 { 1.5, -2.25, 3.75, 0.125 }
    d := hfaDest(b, 4, 4)
    require.True(t, d.IsHFA())
    d.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 16)

    for i := 0; i < 4; i++ {
        /* low 4 bytes hold the value, the rest of the slot is zeroed */
        require.Equal(t, uint64(math.Float32bits(src[i])), u64at(b.FloatSlot(i)))
        require.Zero(t, u64at(unsafe.Add(b.FloatSlot(i), 8)))
    }
}

func TestHFA_TwoDoubles(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)
    trashFloatSlots(b, 2)

    src := [2]float64 { 42.0, -0.5 }
    d := hfaDest(b, 2, 8)
    d.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 16)

    require.Equal(t, math.Float64bits(src[0]), u64at(b.FloatSlot(0)))
    require.Zero(t, u64at(unsafe.Add(b.FloatSlot(0), 8)))
    require.Equal(t, math.Float64bits(src[1]), u64at(b.FloatSlot(1)))
    require.Zero(t, u64at(unsafe.Add(b.FloatSlot(1), 8)))
}

func TestHFA_TwoVectors(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)

    src := [4]uint64 { 0x0101010101010101, 0x0202020202020202, 0x0303030303030303, 0x0404040404040404 }
    d := hfaDest(b, 2, 16)
    d.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 32)

    /* 16-byte fields occupy the full slot, both halves copied */
    require.Equal(t, src[0], u64at(b.FloatSlot(0)))
    require.Equal(t, src[1], u64at(unsafe.Add(b.FloatSlot(0), 8)))
    require.Equal(t, src[2], u64at(b.FloatSlot(1)))
    require.Equal(t, src[3], u64at(unsafe.Add(b.FloatSlot(1), 8)))
}

func TestHFA_RegisterRunStart(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)
    src := [1]float64 { 7.0 }
    d := NewStructDest(abi.AAPCS64, b.Base(), &abi.ArgLocDesc {
        FloatRegIndex : 5,
        FloatRegCount : 1,
        HfaFieldSize  : 8,
    })
    d.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 8)
    require.Equal(t, math.Float64bits(7.0), u64at(b.FloatSlot(5)))
}

func TestHFA_ZeroStructInRegisters(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)
    trashFloatSlots(b, 3)

    d := hfaDest(b, 3, 8)
    d.ZeroStructInRegisters(24)

    for i := 0; i < 3; i++ {
        require.Zero(t, u64at(b.FloatSlot(i)))
        require.Zero(t, u64at(unsafe.Add(b.FloatSlot(i), 8)))
    }
}

func TestHFA_ContractViolations(t *testing.T) {
    b := abi.NewBlock(abi.AAPCS64)
    src := [16]byte{}
    d := hfaDest(b, 2, 8)

    /* field run must cover the declared size */
    require.Panics(t, func() { d.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 12) })

    /* homogeneous fields are 4, 8 or 16 bytes */
    bad := hfaDest(b, 2, 2)
    require.Panics(t, func() { bad.CopyHFAStructToRegister(unsafe.Pointer(&src[0]), 4) })

    /* no references to report in a float-only aggregate */
    require.Panics(t, func() {
        d.ReportPointersFromStructInRegisters(func(unsafe.Pointer, unsafe.Pointer, uint32) {}, nil, 16)
    })
}
