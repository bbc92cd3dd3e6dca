package catalog

// Classify derives the use case for a product. Rules are checked in a fixed
// order and the first one that holds wins, so a high-RAM, high-storage phone
// is always gaming regardless of its price.
func Classify(ram, storage int, brand string, price int) UseCase {
	switch {
	case ram >= 8 && storage >= 128:
		return UseCaseGaming
	case brand == "google" || price >= 40000:
		return UseCaseCamera
	case price <= 20000:
		return UseCaseBudget
	case price >= 60000:
		return UseCasePremium
	default:
		return UseCaseEveryday
	}
}
