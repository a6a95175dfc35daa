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
    `strings`
)

// ArgLocDesc locates one register-resident aggregate argument: how many
// registers of each bank it consumes, where the run starts, and exactly one
// classification payload. Produced once by the classifier, immutable
// thereafter, and shared by every call site passing the same shape.
type ArgLocDesc struct {
    GenRegIndex   int
    GenRegCount   int
    FloatRegIndex int
    FloatRegCount int

    /* classification payload, exactly one set per Form */
    Eightbytes   EightbyteLayout   // FormEightbytes
    HfaFieldSize int               // FormHomogeneous, 4, 8 or 16 bytes per field
    Fields       FpStructInfo      // FormCombined
}

// Form derives the classification form from which payload is populated.
func (self *ArgLocDesc) Form() Form {
    switch {
        case self == nil                       : return FormNone
        case self.Eightbytes != nil            : return FormEightbytes
        case self.HfaFieldSize != 0            : return FormHomogeneous
        case self.Fields.Flags != FpUseIntCallConv : return FormCombined
        default                                : return FormNone
    }
}

func (self *ArgLocDesc) String() string {
    if self == nil {
        return "(none)"
    } else {
        return fmt.Sprintf("{%s,%s}", self.formatRegs(), self.formatPayload())
    }
}

func (self *ArgLocDesc) formatRegs() string {
    mm := make([]string, 0, 2)

    /* general-purpose run, then floating run */
    if self.GenRegCount != 0 {
        mm = append(mm, fmt.Sprintf("g%d+%d", self.GenRegIndex, self.GenRegCount))
    }
    if self.FloatRegCount != 0 {
        mm = append(mm, fmt.Sprintf("f%d+%d", self.FloatRegIndex, self.FloatRegCount))
    }

    /* join them together */
    return strings.Join(mm, ",")
}

func (self *ArgLocDesc) formatPayload() string {
    switch self.Form() {
        case FormEightbytes  : return self.formatEightbytes()
        case FormHomogeneous : return fmt.Sprintf("hfa/%d", self.HfaFieldSize)
        case FormCombined    : return self.Fields.String()
        default              : return "?"
    }
}

func (self *ArgLocDesc) formatEightbytes() string {
    nb := self.Eightbytes.NumEightbytes()
    mm := make([]string, nb)

    /* convert each eightbyte */
    for i := 0; i < nb; i++ {
        mm[i] = fmt.Sprintf("%d:%s", self.Eightbytes.EightbyteSize(i), self.Eightbytes.EightbyteClass(i))
    }
    return strings.Join(mm, ",")
}
