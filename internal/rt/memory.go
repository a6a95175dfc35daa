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

package rt

import (
    `unsafe`
)

/* Raw little-endian register lane accesses. None of these may allocate,
 * they run while the caller holds raw addresses into a register save area. */

func Load8(p unsafe.Pointer) uint8 {
    return *(*uint8)(p)
}

func Load16(p unsafe.Pointer) uint16 {
    return *(*uint16)(p)
}

func Load32(p unsafe.Pointer) uint32 {
    return *(*uint32)(p)
}

func Load64(p unsafe.Pointer) uint64 {
    return *(*uint64)(p)
}

func Store8(p unsafe.Pointer, v uint8) {
    *(*uint8)(p) = v
}

func Store16(p unsafe.Pointer, v uint16) {
    *(*uint16)(p) = v
}

func Store32(p unsafe.Pointer, v uint32) {
    *(*uint32)(p) = v
}

func Store64(p unsafe.Pointer, v uint64) {
    *(*uint64)(p) = v
}

/* LoadZx reads n little-endian bytes zero-extended to a full register
 * lane, 1 <= n <= 8. */
func LoadZx(p unsafe.Pointer, n int) uint64 {
    v := uint64(0)
    for i := 0; i < n; i++ {
        v |= uint64(Load8(unsafe.Add(p, i))) << (8 * i)
    }
    return v
}

/* MoveBytes copies n bytes between raw addresses without touching the
 * garbage collector, the regions never overlap. */
func MoveBytes(dst unsafe.Pointer, src unsafe.Pointer, n int) {
    copy(BytesFrom(dst, n, n), BytesFrom(src, n, n))
}

func IsAligned(p unsafe.Pointer, n uintptr) bool {
    return uintptr(p) % n == 0
}
