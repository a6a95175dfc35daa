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

// Package regmarshal decides, per argument of a call between managed and
// native code, which memory or register location holds the argument's
// bytes, and performs the per-architecture encoding needed to read or
// write aggregate arguments passed partially or wholly in registers.
package regmarshal

import (
    `unsafe`

    `github.com/jkrishmys/regmarshal/internal/abi`
    `github.com/jkrishmys/regmarshal/internal/argdest`
)

// ArgDestination is the destination location of one argument.
type ArgDestination = argdest.ArgDestination

// ArgLocDesc locates a register-resident aggregate argument.
type ArgLocDesc = abi.ArgLocDesc

// Convention is one target's calling-convention metadata.
type Convention = abi.Convention

// Block is a per-call transition block holding the register save areas.
type Block = abi.Block

// PromoteFunc is the collector's reference reporting callback.
type PromoteFunc = argdest.PromoteFunc

// Supported calling conventions.
var (
    SysVAMD64 = abi.SysVAMD64
    AAPCS64   = abi.AAPCS64
    RVA64     = abi.RVA64
    LA64      = abi.LA64
)

const (
    // GCCallInterior marks a reported slot as holding an interior pointer.
    GCCallInterior = argdest.GCCallInterior
)

// NewBlock allocates a transition block for one call under conv.
func NewBlock(conv *Convention) *Block {
    return abi.NewBlock(conv)
}

// NewDest makes a flat argument destination at base + offset.
func NewDest(conv *Convention, base unsafe.Pointer, offset int) ArgDestination {
    return argdest.NewDest(conv, base, offset)
}

// NewStructDest makes an argument destination for an aggregate passed in
// registers, described by layout.
func NewStructDest(conv *Convention, base unsafe.Pointer, layout *ArgLocDesc) ArgDestination {
    return argdest.NewStructDest(conv, base, layout)
}
