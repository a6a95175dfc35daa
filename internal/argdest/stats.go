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
    `sync/atomic`
)

/* Operation counters, bumped after each copy/zero/report completes. They
 * sit outside the no-allocation core loops. */

var (
    copyCount   int64
    zeroCount   int64
    reportCount int64
)

func addCopy()   { atomic.AddInt64(&copyCount, 1) }
func addZero()   { atomic.AddInt64(&zeroCount, 1) }
func addReport() { atomic.AddInt64(&reportCount, 1) }

func CopyCount() int64   { return atomic.LoadInt64(&copyCount) }
func ZeroCount() int64   { return atomic.LoadInt64(&zeroCount) }
func ReportCount() int64 { return atomic.LoadInt64(&reportCount) }
