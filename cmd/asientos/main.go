package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tu-usuario/asientos-afip/internal/application/libros"
	"github.com/tu-usuario/asientos-afip/internal/domain/asientos"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
	infraafip "github.com/tu-usuario/asientos-afip/internal/infrastructure/afip"
	infracrypto "github.com/tu-usuario/asientos-afip/internal/infrastructure/crypto"
	"github.com/tu-usuario/asientos-afip/internal/infrastructure/export"
	"github.com/tu-usuario/asientos-afip/pkg/config"
	"github.com/tu-usuario/asientos-afip/pkg/logger"
)

var version = "1.0.0"

func main() {
	// .env opcional; las env vars explícitas tienen prioridad vía Viper.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "asientos",
		Short:   "Genera asientos contables (RT 54 / RG 4115) desde exports AFIP",
		Version: version,
	}
	rootCmd.AddCommand(newGenerarCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newGenerarCmd() *cobra.Command {
	var salida string
	var esquema string

	cmd := &cobra.Command{
		Use:   "generar [archivo.csv]",
		Short: "Convierte un export AFIP en tres libros: histórico, ajustado y ajuste RT 54",
		Long: `Lee el CSV de comprobantes recibidos descargado de AFIP, normaliza cada
comprobante, aplica el ajuste por inflación RT 54 y la deducibilidad de IVA
RG 4115/2017, y genera los tres libros de partida doble (histórico, ajustado
y ajuste puro) más un metadata.json de auditoría.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerar(args[0], salida, esquema)
		},
	}

	cmd.Flags().StringVarP(&salida, "output", "o", "output", "Directorio de salida de los libros")
	cmd.Flags().StringVar(&esquema, "esquema", "", "Layout de columnas del CSV: totales | alicuotas (default: config)")
	return cmd
}

func runGenerar(archivo, salida, esquemaFlag string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("app", cfg.App.Name).Str("archivo", archivo).Msg("iniciando corrida")

	if esquemaFlag == "" {
		esquemaFlag = cfg.Asientos.Esquema
	}
	esquema, err := asientos.EsquemaDesdeString(esquemaFlag)
	if err != nil {
		return err
	}

	coef, err := decimal.NewFromString(cfg.Asientos.CoefMensual)
	if err != nil {
		return fmt.Errorf("IPC_MENSUAL inválido %q: %w", cfg.Asientos.CoefMensual, err)
	}

	claveCUIT := cfg.Crypto.CUITKey
	if claveCUIT == "" {
		// Sin CUIT_KEY los tokens no sobreviven al proceso; solo para desarrollo.
		claveCUIT, err = infracrypto.ClaveAleatoria()
		if err != nil {
			return err
		}
		log.Warn().Msg("CUIT_KEY no configurada: usando clave efímera de desarrollo")
	}
	cifrador, err := infracrypto.NewCifradorAESGCM(claveCUIT)
	if err != nil {
		return err
	}

	uc := libros.NewGenerarLibrosUseCase(libros.Config{
		CoefMensual:       coef,
		MesesRT54:         cfg.Asientos.MesesRT54,
		CodigosDeducibles: cfg.Asientos.CodigosDeducibles,
		CodTributoDefault: cfg.Asientos.CodTributoDefault,
		Esquema:           esquema,
		Cuentas: entity.PlanCuentas{
			Proveedores:      cfg.Cuentas.Proveedores,
			IVACreditoFiscal: cfg.Cuentas.IVACreditoFiscal,
			Compras:          cfg.Cuentas.Compras,
			AjusteRT54:       cfg.Cuentas.AjusteRT54,
		},
		Moneda: cfg.Asientos.Moneda,
	}, cifrador, log)

	lector := infraafip.NewLectorCSV(log.Componente("lector"))
	columnas, filas, err := lector.Leer(archivo)
	if err != nil {
		return err
	}

	resultado, err := uc.Generar(columnas, filas)
	if err != nil {
		return err
	}

	hash, err := export.SHA256Archivo(archivo)
	if err != nil {
		return err
	}
	escritor := export.NewEscritorCSV(salida)
	dir, err := escritor.Exportar(resultado.Libros, export.Metadata{
		RunID:           resultado.Resumen.RunID,
		ArchivoOrigen:   archivo,
		SHA256Origen:    hash,
		CoefMensual:     cfg.Asientos.CoefMensual,
		MesesRT54:       cfg.Asientos.MesesRT54,
		ProcesadoEl:     time.Now(),
		CUITsProtegidos: resultado.CUITsProtegidos,
	})
	if err != nil {
		return err
	}

	imprimirResumen(resultado, dir)
	return nil
}

func imprimirResumen(r *libros.Resultado, dir string) {
	res := r.Resumen
	fmt.Printf("Corrida %s\n", res.RunID)
	fmt.Printf("  Filas leídas:            %d\n", res.Filas)
	fmt.Printf("  Comprobantes válidos:    %d\n", res.Comprobantes)
	fmt.Printf("  Descartados por CAE:     %d\n", res.DescartadosCAE)
	fmt.Printf("  Importes no numéricos:   %d\n", res.MontosNoNumericos)
	fmt.Printf("  Fechas inválidas:        %d\n", res.FechasInvalidas)
	fmt.Printf("  Excluidos de los libros: %d\n", res.Excluidos)
	for tipo, estado := range res.Libros {
		if estado.Valido {
			fmt.Printf("  Libro %-12s OK (%d líneas)\n", tipo, estado.Lineas)
		} else {
			fmt.Printf("  Libro %-12s DESCUADRE de %s (descartado)\n", tipo, estado.Delta.StringFixed(2))
		}
	}
	fmt.Printf("Libros generados en %s\n", dir)
}
