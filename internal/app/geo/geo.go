package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	viaCEPURL    = "https://viacep.com.br/ws/%s/json/"
	nominatimURL = "https://nominatim.openstreetmap.org/search"
	raioTerraKm  = 6371.0
)

// Client consulta ViaCEP e Nominatim para resolver a posição de um endereço.
// Uma tentativa por chamada, sem retry: falha vira erro para o handler.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// EnderecoCEP é a resposta relevante do ViaCEP
type EnderecoCEP struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// BuscarCEP resolve um CEP em endereço via ViaCEP
func (c *Client) BuscarCEP(ctx context.Context, cep string) (*EnderecoCEP, error) {
	cep = strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if len(cep) != 8 {
		return nil, fmt.Errorf("CEP inválido: %s", cep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(viaCEPURL, cep), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	var endereco EnderecoCEP
	if err := json.NewDecoder(resp.Body).Decode(&endereco); err != nil {
		return nil, err
	}
	if endereco.Erro {
		return nil, fmt.Errorf("CEP %s não encontrado", cep)
	}

	return &endereco, nil
}

type resultadoNominatim struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocodificar resolve um endereço em lat/lon via Nominatim
func (c *Client) Geocodificar(ctx context.Context, endereco, cidade, uf string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s, %s, %s, Brasil", endereco, cidade, uf))
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nominatimURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", "gestaocon/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao geocodificar endereço: %w", err)
	}
	defer resp.Body.Close()

	var resultados []resultadoNominatim
	if err := json.NewDecoder(resp.Body).Decode(&resultados); err != nil {
		return 0, 0, err
	}
	if len(resultados) == 0 {
		return 0, 0, fmt.Errorf("endereço não localizado no geocoder")
	}

	lat, err := strconv.ParseFloat(resultados[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(resultados[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}

	logrus.Infof("endereço geocodificado: %s -> (%f, %f)", endereco, lat, lon)
	return lat, lon, nil
}

// Haversine calcula a distância em km entre duas coordenadas
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return raioTerraKm * c
}
