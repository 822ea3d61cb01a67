// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cq

// RaceEnabled is true when the race detector is active.
// Tests that serialize trackers with an atomix spin lock skip themselves
// under the detector, which cannot observe atomix acquire-release ordering.
const RaceEnabled = true
