package gogpuview

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imgview"
)

var keys = map[gpucontext.Key]imgview.Key{
	gpucontext.KeyH:      imgview.KeyH,
	gpucontext.KeyV:      imgview.KeyV,
	gpucontext.KeyR:      imgview.KeyR,
	gpucontext.KeyL:      imgview.KeyL,
	gpucontext.KeyI:      imgview.KeyI,
	gpucontext.KeyQ:      imgview.KeyQ,
	gpucontext.KeyEscape: imgview.KeyEscape,
}

// mapKey translates a gogpu key code. Unbound keys become KeyOther.
func mapKey(k gpucontext.Key) imgview.Key {
	if vk, ok := keys[k]; ok {
		return vk
	}
	return imgview.KeyOther
}
