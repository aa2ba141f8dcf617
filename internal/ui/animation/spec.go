package animation

import "fyne.io/fyne/v2"

// FlashSpec defines the two icons a flash alternates between.
type FlashSpec struct {
	Alert   fyne.Resource
	Resting fyne.Resource
}
