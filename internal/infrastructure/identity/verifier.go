// Package identity delega la verificación de tokens Bearer en el proveedor
// de identidad. No hay verificación local propia más allá de validar la firma
// con los certificados públicos que el propio proveedor publica.
package identity

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aracah/aracah-api/internal/application/gateway"
)

// DefaultCertsURL certificados x509 de securetoken (tokens de Identity Platform).
const DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const defaultCertsTTL = time.Hour

var _ gateway.Verifier = (*CertVerifier)(nil)

// CertVerifier valida tokens RS256 contra el mapa kid→certificado del
// proveedor. Los certificados se cachean según el Cache-Control de la
// respuesta; los tokens mismos nunca se cachean.
type CertVerifier struct {
	client    *resty.Client
	projectID string
	certsURL  string

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

// NewCertVerifier construye el verificador. certsURL vacío usa el endpoint
// por defecto del proveedor.
func NewCertVerifier(projectID, certsURL string) *CertVerifier {
	if certsURL == "" {
		certsURL = DefaultCertsURL
	}
	return &CertVerifier{
		client:    resty.New().SetTimeout(10 * time.Second),
		projectID: projectID,
		certsURL:  certsURL,
		keys:      map[string]*rsa.PublicKey{},
	}
}

type providerClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verify valida el token y devuelve la identidad decodificada.
func (v *CertVerifier) Verify(ctx context.Context, token string) (*gateway.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"})}
	if v.projectID != "" {
		opts = append(opts,
			jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
			jwt.WithAudience(v.projectID),
		)
	}

	claims := &providerClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token sin kid")
		}
		return v.keyFor(ctx, kid)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("verificar token: %w", err)
	}

	return &gateway.Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// keyFor devuelve la llave pública del kid, refrescando el cache si venció
// o si el kid es desconocido (rotación de certificados).
func (v *CertVerifier) keyFor(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := time.Now().Before(v.expires)
	v.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	if key, ok := v.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("kid %q no está entre los certificados del proveedor", kid)
}

func (v *CertVerifier) refresh(ctx context.Context) error {
	var raw map[string]string
	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&raw).
		Get(v.certsURL)
	if err != nil {
		return fmt.Errorf("descargar certificados: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("descargar certificados: HTTP %d", resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(raw))
	for kid, certPEM := range raw {
		key, err := parseCertKey(certPEM)
		if err != nil {
			return fmt.Errorf("certificado %s: %w", kid, err)
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return fmt.Errorf("el proveedor no devolvió certificados")
	}

	ttl := cacheTTL(resp.Header().Get("Cache-Control"))

	v.mu.Lock()
	v.keys = keys
	v.expires = time.Now().Add(ttl)
	v.mu.Unlock()
	return nil
}

func parseCertKey(certPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil {
		return nil, fmt.Errorf("PEM inválido")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parsear certificado: %w", err)
	}
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("la llave del certificado no es RSA")
	}
	return key, nil
}

var maxAgeRe = regexp.MustCompile(`max-age=(\d+)`)

func cacheTTL(cacheControl string) time.Duration {
	if m := maxAgeRe.FindStringSubmatch(cacheControl); m != nil {
		if secs, err := strconv.Atoi(m[1]); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultCertsTTL
}
