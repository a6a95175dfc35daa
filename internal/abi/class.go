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

// Class is the System V classification of one eightbyte of an aggregate.
type Class uint8

const (
    ClassInteger Class = iota
    ClassIntegerReference
    ClassIntegerByRef
    ClassSSE
)

func (self Class) String() string {
    switch self {
        case ClassInteger          : return "Integer"
        case ClassIntegerReference : return "IntegerReference"
        case ClassIntegerByRef     : return "IntegerByRef"
        case ClassSSE              : return "SSE"
        default                    : return "???"
    }
}

// IsFloat distinguishes the floating bank from the three integer variants.
func (self Class) IsFloat() bool {
    return self == ClassSSE
}

// IsReference reports whether the eightbyte carries a managed reference
// the collector must be told about.
func (self Class) IsReference() bool {
    return self == ClassIntegerReference || self == ClassIntegerByRef
}

// EightbyteLayout is the classified shape of a register-passable aggregate,
// owned by the type system and derived from its type metadata on demand.
// Classification is computed once per distinct aggregate shape and outlives
// any single call.
type EightbyteLayout interface {
    NumEightbytes() int
    EightbyteSize(i int) int
    EightbyteClass(i int) Class
}

// Eightbyte is one classified chunk of an aggregate.
type Eightbyte struct {
    Size  int
    Class Class
}

// Eightbytes is the plain pre-flattened form of an EightbyteLayout.
type Eightbytes []Eightbyte

func (self Eightbytes) NumEightbytes() int {
    return len(self)
}

func (self Eightbytes) EightbyteSize(i int) int {
    return self[i].Size
}

func (self Eightbytes) EightbyteClass(i int) Class {
    return self[i].Class
}
