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
    `testing`
    `unsafe`

    `github.com/stretchr/testify/require`
)

func TestMemory_LoadZx(t *testing.T) {
    buf := [8]byte { 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x11, 0x22 }
    p := unsafe.Pointer(&buf[0])
    require.Equal(t, uint64(0xaa), LoadZx(p, 1))
    require.Equal(t, uint64(0xbbaa), LoadZx(p, 2))
    require.Equal(t, uint64(0xddccbbaa), LoadZx(p, 4))
    require.Equal(t, uint64(0x2211ffeeddccbbaa), LoadZx(p, 8))
}

func TestMemory_MoveBytes(t *testing.T) {
    src := [5]byte { 1, 2, 3, 4, 5 }
    dst := [8]byte { 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff }
    MoveBytes(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), 5)
    require.Equal(t, [8]byte { 1, 2, 3, 4, 5, 0xff, 0xff, 0xff }, dst)
}

func TestMemory_LanesAndViews(t *testing.T) {
    var v uint64
    p := unsafe.Pointer(&v)
    Store64(p, 0x1122334455667788)
    require.Equal(t, uint32(0x55667788), Load32(p))
    Store16(p, 0xaabb)
    require.Equal(t, uint64(0x112233445566aabb), Load64(p))
    require.True(t, IsAligned(p, 8))
    require.Equal(t, []byte { 0xbb, 0xaa }, BytesFrom(p, 2, 2))
}
