package game

import (
	"encoding/binary"
	"math"
)

// SampleRate 合成音效的默认采样率
const SampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	SoundCapture SoundID = "capture"
	SoundHazard  SoundID = "hazard"
	SoundScatter SoundID = "scatter"
	SoundWin     SoundID = "win"
	SoundLose    SoundID = "lose"
)

// Note 合成音符
type Note struct {
	Frequency float64 // Hz，0 表示休止
	Seconds   float64
}

// soundBank 音效定义（正弦音符序列，无需音频资源文件）
var soundBank = map[SoundID][]Note{
	SoundCapture: {{880, 0.06}, {1320, 0.08}},
	SoundHazard:  {{220, 0.12}, {165, 0.18}},
	SoundScatter: {{660, 0.05}, {440, 0.05}, {330, 0.08}},
	SoundWin:     {{523.25, 0.12}, {659.25, 0.12}, {783.99, 0.12}, {1046.5, 0.3}},
	SoundLose:    {{392, 0.2}, {311.13, 0.2}, {261.63, 0.4}},
}

// AllSounds 按固定顺序返回全部音效
func AllSounds() []SoundID {
	return []SoundID{SoundCapture, SoundHazard, SoundScatter, SoundWin, SoundLose}
}

// SoundNotes 返回音效的音符序列（副本），未知音效返回 false
func SoundNotes(id SoundID) ([]Note, bool) {
	notes, ok := soundBank[id]
	if !ok {
		return nil, false
	}
	return append([]Note(nil), notes...), true
}

// SynthesizeNotes 生成 16 位小端立体声 PCM
//
// 每个音符带 5ms 的淡入淡出，避免爆音。
func SynthesizeNotes(sampleRate int, notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Seconds * float64(sampleRate))
	}
	buf := make([]byte, 0, total*4)

	fade := int(0.005 * float64(sampleRate))
	for _, n := range notes {
		count := int(n.Seconds * float64(sampleRate))
		for i := 0; i < count; i++ {
			v := 0.0
			if n.Frequency > 0 {
				v = math.Sin(2 * math.Pi * n.Frequency * float64(i) / float64(sampleRate))
				if i < fade {
					v *= float64(i) / float64(fade)
				} else if count-i < fade {
					v *= float64(count-i) / float64(fade)
				}
			}
			sample := int16(v * 0.3 * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
		}
	}
	return buf
}
