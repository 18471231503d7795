package decoder

import "encoding/json"

// Default parameters applied when a setMode message omits the
// modulation-specific numeric field.
const (
	defaultAmBandwidth   = 10000
	defaultNbfmDeviation = 8000
	setModeTag           = 1
)

// SetModeMessage is the JSON shape of a setMode control message's payload,
// mirroring decode-module.cc's VarDictionary: {modulation, bandwidth?, maxF?}.
// Bandwidth and MaxF are pointers so a missing field is distinguishable from
// an explicit zero.
type SetModeMessage struct {
	Modulation string `json:"modulation"`
	Bandwidth  *int   `json:"bandwidth,omitempty"`
	MaxF       *int   `json:"maxF,omitempty"`
}

// ApplyControlMessage decodes a transport-level (tag, payload) control
// message and, for a setMode message (tag 1), swaps the host's chain.
// Any other tag is treated as a process request and ignored here — the
// caller is expected to route those to Process directly. Neither case below
// is an error, for robustness against an untrusted transport: a payload that
// fails to parse is silently dropped, and an unrecognized modulation name
// falls back to WBFM.
func (h *DecoderHost) ApplyControlMessage(tag int, payload json.RawMessage) {
	if tag != setModeTag {
		return
	}
	var msg SetModeMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return
	}
	h.SetMode(modeConfigFromMessage(msg))
}

func modeConfigFromMessage(msg SetModeMessage) ModeConfig {
	switch msg.Modulation {
	case "AM":
		bw := defaultAmBandwidth
		if msg.Bandwidth != nil {
			bw = *msg.Bandwidth
		}
		return ModeConfig{Modulation: AM, Bandwidth: float64(bw)}
	case "NBFM":
		maxF := defaultNbfmDeviation
		if msg.MaxF != nil {
			maxF = *msg.MaxF
		}
		return ModeConfig{Modulation: NBFM, MaxDeviation: float64(maxF)}
	default:
		return ModeConfig{Modulation: WBFM}
	}
}

// Response is the merged result of a process request: the two audio
// channels plus the status fields a caller typically folds into its own
// reply dictionary.
type Response struct {
	Left, Right []float32
	Rate        int
	Stereo      bool
	Carrier     bool
}

// Respond builds a Response from a decode result and the host's output
// rate, merging rate/stereo/carrier into any caller-supplied context map
// (mirroring decode-module.cc's dict.Set calls onto the caller's context
// dictionary) without disturbing other keys already present in it.
func (h *DecoderHost) Respond(audio StereoAudio, ctx map[string]any) (Response, map[string]any) {
	if ctx == nil {
		ctx = make(map[string]any, 3)
	}
	ctx["rate"] = int(h.outRate)
	ctx["stereo"] = audio.InStereo
	ctx["carrier"] = audio.Carrier

	return Response{
		Left:    audio.Left,
		Right:   audio.Right,
		Rate:    int(h.outRate),
		Stereo:  audio.InStereo,
		Carrier: audio.Carrier,
	}, ctx
}
