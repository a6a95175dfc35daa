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
)

// FpStructFlags describes which of the at most two sub-fields of an
// aggregate passed by the hardware floating-point calling convention are
// floating vs. integer, with both size shifts packed into the same word.
type FpStructFlags uint32

const (
    FpUseIntCallConv FpStructFlags = 0         // aggregate not passed by the FP convention
    FpOnlyOne        FpStructFlags = 1 << 0    // single floating field
    FpBothFloat      FpStructFlags = 1 << 1    // two floating fields
    FpFloatInt       FpStructFlags = 1 << 2    // floating field then integer field
    FpIntFloat       FpStructFlags = 1 << 3    // integer field then floating field
)

const (
    fpSizeShift1stPos = 4   // 2 bits, log2 of the first field size
    fpSizeShift2ndPos = 6   // 2 bits, log2 of the second field size
)

// FpStructInfo is the combined-field classification payload: the flag word
// plus each sub-field's byte offset within the aggregate.
type FpStructInfo struct {
    Flags     FpStructFlags
    Offset1st uint32
    Offset2nd uint32
}

// FpInfo packs a combined-field classification. Size shifts encode field
// sizes of 1, 2, 4 or 8 bytes as log2.
func FpInfo(flags FpStructFlags, shift1st uint, offset1st uint32, shift2nd uint, offset2nd uint32) FpStructInfo {
    return FpStructInfo {
        Flags     : flags | FpStructFlags(shift1st) << fpSizeShift1stPos | FpStructFlags(shift2nd) << fpSizeShift2ndPos,
        Offset1st : offset1st,
        Offset2nd : offset2nd,
    }
}

func (self FpStructInfo) SizeShift1st() uint {
    return uint(self.Flags >> fpSizeShift1stPos) & 0b11
}

func (self FpStructInfo) SizeShift2nd() uint {
    return uint(self.Flags >> fpSizeShift2ndPos) & 0b11
}

func (self FpStructInfo) Size1st() int {
    return 1 << self.SizeShift1st()
}

func (self FpStructInfo) Size2nd() int {
    return 1 << self.SizeShift2nd()
}

func (self FpStructInfo) String() string {
    return fmt.Sprintf(
        "{%s,%d@%d,%d@%d}",
        self.Flags,
        self.Size1st(),
        self.Offset1st,
        self.Size2nd(),
        self.Offset2nd,
    )
}

func (self FpStructFlags) String() string {
    switch self & (FpOnlyOne | FpBothFloat | FpFloatInt | FpIntFloat) {
        case FpOnlyOne   : return "OnlyOne"
        case FpBothFloat : return "BothFloat"
        case FpFloatInt  : return "FloatInt"
        case FpIntFloat  : return "IntFloat"
        default          : return "UseIntCallConv"
    }
}
