// Package inventory contiene helpers puros del motor de inventario.
package inventory

// OrderLocations devuelve los dos IDs de ubicación en orden total
// (ascendente). Toda operación que bloquea dos filas de stock debe
// adquirir los bloqueos en este orden, sin importar cuál es origen y
// cuál destino: dos traslados concurrentes sobre el mismo par en
// direcciones opuestas quedan así libres de deadlock.
func OrderLocations(a, b string) (first, second string) {
	if b < a {
		return b, a
	}
	return a, b
}
