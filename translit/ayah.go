package translit

// Ayah is a verse record as delivered by the Quran text API.
type Ayah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

// ConvertAyahs returns a new slice with every Text converted. Other fields,
// order and length are preserved; the input slice is not modified.
func (e *Engine) ConvertAyahs(ayahs []Ayah) []Ayah {
	if ayahs == nil {
		return nil
	}
	out := make([]Ayah, len(ayahs))
	for i, a := range ayahs {
		a.Text = e.Convert(a.Text)
		out[i] = a
	}
	return out
}

// ConvertAyahs converts records with the default engine.
func ConvertAyahs(ayahs []Ayah) []Ayah { return defaultEngine.ConvertAyahs(ayahs) }
