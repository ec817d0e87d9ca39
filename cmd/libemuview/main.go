// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command libemuview builds the C shared library used by foreign emulator
// cores:
//
//	go build -buildmode=c-shared -o libemuview.so ./cmd/libemuview
package main

/*
#include <stdlib.h>
#include <string.h>
#include "emuview.h"
*/
import "C"

import (
	"unsafe"

	"github.com/ezrec/emuview/boundary"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

func main() {}

// cBytes views a NUL terminated C string without copying it.
func cBytes(text *C.char) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(text)), int(C.strlen(text)))
}

//export emuview_load_config
func emuview_load_config(path *C.char) C.int {
	if path == nil || !lib.setConfig(C.GoString(path)) {
		return -1
	}
	return 0
}

//export emuview_start_view
func emuview_start_view() {
	lib.view()
}

//export emuview_update_register_value
func emuview_update_register_value(group *C.char, name *C.char, value C.uint64_t) {
	bd := lib.entry()
	if group == nil || name == nil {
		bd.Reject("update_register_value", "name", boundary.ErrBufferNil)
		return
	}
	bd.UpdateRegisterValue(cBytes(group), cBytes(name), uint64(value))
}

//export emuview_update_register_format
func emuview_update_register_format(group *C.char, name *C.char, format C.emuview_display_format) {
	bd := lib.entry()
	if group == nil || name == nil {
		bd.Reject("update_register_format", "name", boundary.ErrBufferNil)
		return
	}
	bd.UpdateRegisterFormat(cBytes(group), cBytes(name), register.DisplayFormat(format))
}

//export emuview_update_frame_buffer
func emuview_update_frame_buffer(data *C.uint8_t, length C.size_t, handle *C.emuview_sync_handle) {
	bd := lib.entry()
	if data == nil && length != 0 {
		bd.Reject("update_frame_buffer", "data", boundary.ErrBufferNil)
		return
	}

	var pixels []byte
	if length != 0 {
		pixels = unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	}
	bd.UpdateFrameBuffer(pixels, syncSection(handle))
}

//export emuview_set_frequency
func emuview_set_frequency(freq C.emuview_frequency) {
	lib.entry().SetFrequency(frequency.Unit(freq.unit), float32(freq.magnitude))
}

//export emuview_shutdown
func emuview_shutdown() {
	lib.shutdown()
}
