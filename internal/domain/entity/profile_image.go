package entity

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MaxProfileImageBytes tamaño máximo (decodificado) de una foto de perfil: 5 MiB.
const MaxProfileImageBytes = 5 * 1024 * 1024

var (
	// ErrInvalidImage la carga no es un data URL de imagen válido.
	ErrInvalidImage = errors.New("imagen de perfil inválida")
	// ErrImageTooLarge la imagen supera MaxProfileImageBytes.
	ErrImageTooLarge = errors.New("imagen de perfil demasiado grande")
)

// ProfileImage foto de perfil embebida. Se serializa como data URL
// ("data:image/png;base64,...") igual que la subida de imágenes del formulario.
type ProfileImage struct {
	MediaType string // ej: image/png
	Data      []byte
}

// ParseProfileImage decodifica un data URL base64 de tipo image/* de hasta MaxProfileImageBytes.
func ParseProfileImage(dataURL string) (*ProfileImage, error) {
	return decodeDataURL(dataURL, MaxProfileImageBytes)
}

func decodeDataURL(dataURL string, limit int) (*ProfileImage, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURL), "data:")
	if !ok {
		return nil, fmt.Errorf("%w: falta el prefijo data:", ErrInvalidImage)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URL sin carga", ErrInvalidImage)
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: solo se admite base64", ErrInvalidImage)
	}
	mediaType = strings.ToLower(mediaType)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: tipo %q no es imagen", ErrInvalidImage, mediaType)
	}
	if limit > 0 && base64.StdEncoding.DecodedLen(len(payload)) > limit+3 {
		return nil, ErrImageTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrInvalidImage, err)
	}
	if limit > 0 && len(data) > limit {
		return nil, ErrImageTooLarge
	}
	return &ProfileImage{MediaType: mediaType, Data: data}, nil
}

// DataURL devuelve la representación data URL.
func (p *ProfileImage) DataURL() string {
	if p == nil {
		return ""
	}
	return "data:" + p.MediaType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// Clone copia la imagen (nil se mantiene nil).
func (p *ProfileImage) Clone() *ProfileImage {
	if p == nil {
		return nil
	}
	return &ProfileImage{MediaType: p.MediaType, Data: bytes.Clone(p.Data)}
}

// MarshalJSON implementa json.Marshaler.
func (p *ProfileImage) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p.DataURL())
}

// UnmarshalJSON implementa json.Unmarshaler. Lo ya persistido no se vuelve a
// limitar por tamaño; el límite se aplica al validar el formulario.
func (p *ProfileImage) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := decodeDataURL(s, 0)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}
