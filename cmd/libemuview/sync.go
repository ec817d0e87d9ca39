package main

/*
#include "emuview.h"

static inline void emuview_sync_call(void (*fn)(void *), void *ctx) {
	if (fn) {
		fn(ctx);
	}
}
*/
import "C"

import (
	"github.com/ezrec/emuview/framebuffer"
)

// syncSection wraps the caller's lock. A nil handle means the pixels are
// not shared.
func syncSection(handle *C.emuview_sync_handle) framebuffer.CriticalSection {
	if handle == nil {
		return framebuffer.Unsynchronized
	}

	acquire, release, ctx := handle.acquire, handle.release, handle.ctx
	return framebuffer.Funcs{
		AcquireFunc: func() { C.emuview_sync_call(acquire, ctx) },
		ReleaseFunc: func() { C.emuview_sync_call(release, ctx) },
	}
}
