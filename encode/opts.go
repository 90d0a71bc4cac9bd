package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
