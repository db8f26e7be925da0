package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Todo lo que el motor de asientos necesita (plan de cuentas, coeficiente de
// inflación, códigos deducibles, clave de cifrado) se inyecta desde acá;
// el motor no tiene constantes propias.
type Config struct {
	App      AppConfig
	Asientos AsientosConfig
	Cuentas  CuentasConfig
	Crypto   CryptoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// AsientosConfig parámetros del motor de generación de asientos.
type AsientosConfig struct {
	// CoefMensual coeficiente mensual IPC para el ajuste RT 54
	// (5 % anual ≈ 0.00407 mensual).
	CoefMensual string
	// MesesRT54 retraso de reconocimiento en meses para el ajuste por inflación.
	MesesRT54 int
	// CodigosDeducibles códigos de alícuota AFIP cuyo IVA es crédito fiscal
	// computable (RG 4115/2017).
	CodigosDeducibles []int
	// CodTributoDefault código de alícuota asumido cuando el origen no la
	// discrimina y hay IVA informado (5 = 21 %).
	CodTributoDefault int
	// Esquema layout de columnas del CSV de AFIP: "totales" o "alicuotas".
	Esquema string
	// Moneda etiqueta de moneda de las líneas de asiento.
	Moneda string
}

// CuentasConfig plan de cuentas para los asientos generados.
type CuentasConfig struct {
	Proveedores      string
	IVACreditoFiscal string
	Compras          string
	AjusteRT54       string // Resultado por exposición a inflación
}

// CryptoConfig configuración de cifrado de datos personales (Ley 25.326).
type CryptoConfig struct {
	// CUITKey clave simétrica para cifrar CUIT de proveedores. Vacía = se
	// genera una clave efímera por proceso (solo útil en desarrollo).
	CUITKey string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, IPC_MENSUAL, CUIT_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "asientos-afip"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Asientos: AsientosConfig{
			CoefMensual:       getString(v, "IPC_MENSUAL", "0.00407"),
			MesesRT54:         getInt(v, "MESES_RT54", 3),
			CodigosDeducibles: getIntList(v, "CODIGOS_DEDUCIBLES", []int{4, 5, 6, 8, 9}),
			CodTributoDefault: getInt(v, "COD_TRIBUTO_DEFAULT", 5),
			Esquema:           getString(v, "ESQUEMA_CSV", "totales"),
			Moneda:            getString(v, "MONEDA", "ARS"),
		},
		Cuentas: CuentasConfig{
			Proveedores:      getString(v, "CUENTA_PROVEEDORES", "2.1.01"),
			IVACreditoFiscal: getString(v, "CUENTA_IVA_CREDITO", "1.1.04"),
			Compras:          getString(v, "CUENTA_COMPRAS", "5.1.01"),
			AjusteRT54:       getString(v, "CUENTA_AJUSTE_RT54", "6.1.01"),
		},
		Crypto: CryptoConfig{
			CUITKey: getString(v, "CUIT_KEY", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getIntList parsea listas separadas por coma ("4,5,6,8,9").
func getIntList(v *viper.Viper, key string, def []int) []int {
	if !v.IsSet(key) {
		return def
	}
	var out []int
	for _, part := range strings.Split(v.GetString(key), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
