// internal/database/seed.go
package database

import (
	"github.com/lib/pq"

	"github.com/terrazul/terrazul-backend/internal/models"
)

func intPtr(v int) *int { return &v }

// weightPrices follows the catalog convention of a 1kg bag at three
// times the 250g price.
func weightPrices(base int) models.PriceMap {
	return models.PriceMap{
		"250g": base,
		"1kg":  base * 3,
	}
}

var allGrinds = pq.StringArray{"Grano entero", "Molido fino", "Molido medio", "Molido grueso"}

// seedProducts is the launch catalog. The bundled pack has no weight
// variants, so it carries no prices map and sells at its base price.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:           "kantutani-bolivia",
			Name:         "Kantutani, Bolivia",
			PriceNumber:  14000,
			Prices:       weightPrices(14000),
			Img:          "/Kantutani.webp",
			IsNew:        true,
			Region:       "Bolivia",
			RoastLevel:   "Medio",
			TastingNotes: pq.StringArray{"Chocolate", "Nuez", "Caramelo"},
			Acidity:      intPtr(4),
			Intensity:    intPtr(3),
			Bitterness:   intPtr(2),
			GrindOptions: allGrinds,
			Description:  "Un café excepcional cultivado en las alturas de Bolivia. Kantutani ofrece un perfil de taza equilibrado con notas dulces y un cuerpo sedoso. Perfecto para quienes buscan un café de especialidad con carácter pero accesible.",
			ArtInfo: &models.ArtInfo{
				Title:             "Arte de Kantutani",
				Description:       "Ilustración creada para la edición Kantutani: una científica-exploradora que estudia la planta del café como un organismo precioso, cruzando lo ancestral del origen con un ambiente de laboratorio espacial.",
				ArtistName:        "Catalina Cartagena",
				ArtistDescription: "Ilustradora y ceramista chilena de estilo inmediatamente reconocible: figuras expresivas, humor sutil y una estética que mezcla lo íntimo con lo fantástico.",
				ArtistSocials: &models.ArtistSocials{
					Instagram: "@catalinagena",
					Web:       "cl.fineartlatinoamerica.com/collections/catalina-cartagena",
				},
				Illustration: "/Kantutani-Ilustracion.png",
			},
		},
		{
			ID:           "pack-tres-origenes",
			Name:         "Pack Tres Orígenes",
			PriceNumber:  32000,
			Img:          "/Pack Tres Origenes.webp",
			IsNew:        true,
			GrindOptions: allGrinds,
			Description:  "Viaja por el mundo a través del café con nuestro pack de tres orígenes. Incluye selecciones de Guatemala, Colombia y Brasil. Ideal para regalar o para descubrir tu perfil de sabor favorito.",
		},
		{
			ID:           "huehuetenango-guatemala",
			Name:         "Huehuetenango, Guatemala",
			PriceNumber:  36500,
			Prices:       weightPrices(36500),
			Img:          "/Huehuetenango.webp",
			Region:       "Guatemala",
			RoastLevel:   "Medio-Alto",
			TastingNotes: pq.StringArray{"Frutos rojos", "Cacao", "Cítricos"},
			Acidity:      intPtr(5),
			Intensity:    intPtr(3),
			Bitterness:   intPtr(2),
			GrindOptions: allGrinds,
			Description:  "Proveniente de la famosa región de Huehuetenango, este café destaca por su acidez brillante y sus complejas notas frutales. Un favorito entre los conocedores.",
			ArtInfo: &models.ArtInfo{
				Title:             "Arte de Huehuetenango",
				Description:       "Estética retro-cósmica con humor gráfico: un auto flotando en el espacio y un haz que ilumina una planta de café. Comunica viaje, origen y energía en un estilo casi pulp-comic.",
				ArtistName:        "Buen Muchacho",
				ArtistDescription: "Artista gráfico que combina estética alternativa, elementos retro, ciencia ficción y cultura pop, con colores saturados, puntillismo y humor visual.",
				ArtistSocials: &models.ArtistSocials{
					Instagram: "@buen.muchacho_",
					Web:       "www.buenmuchacho.com",
				},
				Illustration: "/Huehuetenango-Ilustracion.png",
			},
		},
		{
			ID:           "huila-colombia",
			Name:         "Huila, Colombia",
			PriceNumber:  40000,
			Prices:       weightPrices(40000),
			Img:          "/Huila.webp",
			Region:       "Colombia",
			RoastLevel:   "Medio",
			TastingNotes: pq.StringArray{"Caramelo", "Manzana", "Vainilla"},
			Acidity:      intPtr(4),
			Intensity:    intPtr(4),
			Bitterness:   intPtr(3),
			GrindOptions: allGrinds,
			Description:  "El clásico café colombiano elevado a su máxima expresión. Dulzura pronunciada, acidez media y un final limpio que invita a seguir bebiendo.",
			ArtInfo: &models.ArtInfo{
				Title:             "Arte de Huila",
				Description:       "Un astronauta flota frente a una cafetera de filtro suspendida en el vacío. Minimalismo sci-fi, silencioso y meditativo: el café como ritual personal incluso en el espacio.",
				ArtistName:        "Lía Sandoval",
				ArtistDescription: "Artista visual chilena especializada en arte digital atmosférico: luz difusa, paletas frías y objetos cotidianos elevados a íconos dentro de paisajes futuristas.",
				Illustration:      "/Huila-Ilustracion.png",
			},
		},
		{
			ID:           "minas-gerais-brasil",
			Name:         "Minas Gerais, Brasil",
			PriceNumber:  34000,
			Prices:       weightPrices(34000),
			Img:          "/Minas Gerais.webp",
			Region:       "Brasil",
			RoastLevel:   "Medio-Oscuro",
			TastingNotes: pq.StringArray{"Chocolate oscuro", "Avellana", "Melaza"},
			Acidity:      intPtr(2),
			Intensity:    intPtr(3),
			Bitterness:   intPtr(4),
			GrindOptions: allGrinds,
			Description:  "Cuerpo denso y baja acidez, típico de los mejores cafés brasileños. Ideal para espresso o para quienes prefieren sabores intensos y achocolatados.",
			ArtInfo: &models.ArtInfo{
				Title:             "Arte de Minas Gerais",
				Description:       "Paisaje espacial agresivo y geométrico con un diamante mecánico central. Estética retro-sci-fi con trazos de grabado y paleta reducida en verde, blanco y negro.",
				ArtistName:        "Ramiro Ossa",
				ArtistDescription: "Ilustrador chileno de gráfica espacial inspirado por la estética pulp de los 70 y el grabado tradicional, con precisión geométrica y texturas manuales.",
				Illustration:      "/Minas Gerais-Ilustracion.png",
			},
		},
	}
}
