package middleware

import (
	"net/http"
	"sync"
	"time"

	"tramitesbackend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limitador cuenta solicitudes por IP dentro de una ventana deslizante.
// Las entradas vencidas se purgan en segundo plano.
type limitador struct {
	limite  int
	ventana time.Duration
	mensaje string

	mu      sync.Mutex
	cuentas map[string]int
	vence   map[string]time.Time
}

func nuevoLimitador(limite int, ventana time.Duration, mensaje string) *limitador {
	l := &limitador{
		limite:  limite,
		ventana: ventana,
		mensaje: mensaje,
		cuentas: make(map[string]int),
		vence:   make(map[string]time.Time),
	}
	go l.purgar()
	return l
}

func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if fin, ok := l.vence[ip]; !ok || now.After(fin) {
		l.cuentas[ip] = 0
		l.vence[ip] = now.Add(l.ventana)
	}
	l.cuentas[ip]++
	return l.cuentas[ip] <= l.limite, l.vence[ip]
}

const intervaloPurga = 5 * time.Minute

func (l *limitador) purgar() {
	ticker := time.NewTicker(intervaloPurga)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purgadas := 0

		l.mu.Lock()
		for ip, fin := range l.vence {
			if now.After(fin) {
				delete(l.vence, ip)
				delete(l.cuentas, ip)
				purgadas++
			}
		}
		restantes := len(l.vence)
		l.mu.Unlock()

		if purgadas > 0 {
			log.Debug().
				Int("purgadas", purgadas).
				Int("restantes", restantes).
				Msg("rate limiter: entradas vencidas purgadas")
		}
	}
}

func (l *limitador) middleware(conRetryAfter bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP())
		if !ok {
			if conRetryAfter {
				c.Header("Retry-After", fin.Format(time.RFC1123))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limita los intentos de login a 20 por minuto por IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := nuevoLimitador(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	return l.middleware(false)
}

// RateLimiter limita el total de solicitudes por IP sobre el grupo /api.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := nuevoLimitador(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	return l.middleware(true)
}
